package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tidechat/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty
// fields leave the corresponding Config values untouched, so a JSON file
// only needs to mention what it overrides.
type JsonConfig struct {
	APIBaseURL   string `json:"api_base_url"`
	FilesBaseURL string `json:"files_base_url"`
	SessionToken string `json:"session_token"`
	StagingDir   string `json:"staging_dir"`
	Uploader     string `json:"uploader"`

	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
	S3Bucket       string `json:"s3_bucket"`
}

// parseJson overlays Config with values loaded from a JSON file, resolved
// from the -c/-config flags. No file selected means no overlay. Read or
// unmarshal errors panic; the caller can recover if desired.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.FilesBaseURL != "" {
		cfg.FilesBaseURL = jc.FilesBaseURL
	}
	if jc.SessionToken != "" {
		cfg.SessionToken = jc.SessionToken
	}
	if jc.StagingDir != "" {
		cfg.StagingDir = jc.StagingDir
	}
	if jc.Uploader != "" {
		cfg.Uploader = UploaderKind(jc.Uploader)
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
}
