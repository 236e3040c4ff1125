// Package config holds runtime settings for the Warlord CLI.
package config

import (
	"os"
	"time"
)

// Config is assembled from defaults, an optional JSON file (-c/-config), and
// command-line flags, in that order of precedence.
//
// Fields:
//   - DatabaseDSN: path of the local SQLite database.
//   - SyncInterval: how often the background cloud push fires.
//   - GeminiAPIKey / GeminiModel: credentials for the card generator.
//   - S3*: settings of the S3-compatible bucket for the cloud dossier.
//     Leaving S3Bucket empty disables cloud sync entirely.
type Config struct {
	DatabaseDSN  string
	SyncInterval time.Duration

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	S3BaseEndpoint string
	S3Region       string
	S3Bucket       string
	S3AccessKeyId  string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults. Secrets default to the
// environment so they never have to live in a config file.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "warlord.db"
	c.SyncInterval = 60 * time.Second
	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.GeminiModel = "gemini-3-flash-preview"
	c.S3Region = "us-east-1"
	c.S3AccessKeyId = os.Getenv("AWS_ACCESS_KEY_ID")
	c.S3SecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
