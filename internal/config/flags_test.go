package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		check       func(t *testing.T, c *Config)
	}{
		{
			name: "overrides dsn, interval and bucket",
			args: []string{"cmd", "-d", "campaign.db", "-i", "10", "-b", "warlord"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "campaign.db", c.DatabaseDSN)
				assert.Equal(t, 10*time.Second, c.SyncInterval)
				assert.Equal(t, "warlord", c.S3Bucket)
			},
		},
		{
			name: "keeps defaults without flags",
			args: []string{"cmd"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "warlord.db", c.DatabaseDSN)
				assert.Equal(t, 60*time.Second, c.SyncInterval)
			},
		},
		{
			name:        "bad interval panics",
			args:        []string{"cmd", "-i", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			config.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			tt.check(t, config)
		})
	}
}
