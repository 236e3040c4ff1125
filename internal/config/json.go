package config

import (
	"encoding/json"
	"os"

	"github.com/warlord-os/warlord/internal/flagx"
	"github.com/warlord-os/warlord/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "60s"
// or as integer nanoseconds. Zero values leave the corresponding Config
// field untouched so a partial file only overrides what it names.
type JsonConfig struct {
	DatabaseDSN    string         `json:"database_dsn"`
	SyncInterval   timex.Duration `json:"sync_interval"`
	GeminiAPIKey   string         `json:"gemini_api_key"`
	GeminiModel    string         `json:"gemini_model"`
	GeminiBaseURL  string         `json:"gemini_base_url"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	S3Region       string         `json:"s3_region"`
	S3Bucket       string         `json:"s3_bucket"`
	S3AccessKeyId  string         `json:"s3_access_key_id"`
	S3SecretKey    string         `json:"s3_secret_key"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. Without those flags nothing is loaded. Read or unmarshal
// errors panic; this runs once at startup before anything else.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SyncInterval.Duration > 0 {
		cfg.SyncInterval = jc.SyncInterval.Duration
	}
	if jc.GeminiAPIKey != "" {
		cfg.GeminiAPIKey = jc.GeminiAPIKey
	}
	if jc.GeminiModel != "" {
		cfg.GeminiModel = jc.GeminiModel
	}
	if jc.GeminiBaseURL != "" {
		cfg.GeminiBaseURL = jc.GeminiBaseURL
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3AccessKeyId != "" {
		cfg.S3AccessKeyId = jc.S3AccessKeyId
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
}
