// Package config assembles the client runtime configuration from layered
// sources. Later sources take precedence: defaults, then environment
// variables, then a JSON file (if one is pointed at via -c/-config), then
// command-line flags.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// UploaderKind selects the asset-upload backend.
type UploaderKind string

const (
	// UploaderHTTP uploads through the hosted files service.
	UploaderHTTP UploaderKind = "http"
	// UploaderS3 uploads straight into an S3-compatible bucket
	// (self-hosted deployments).
	UploaderS3 UploaderKind = "s3"
)

// Config holds runtime settings for the tidechat client.
type Config struct {
	// APIBaseURL is the REST backend, e.g. https://api.tidechat.example.
	APIBaseURL string `env:"TIDECHAT_API_URL" validate:"required,url"`
	// FilesBaseURL is the files host serving and accepting assets.
	FilesBaseURL string `env:"TIDECHAT_FILES_URL" validate:"required,url"`
	// SessionToken authenticates every request. May be left empty and
	// entered interactively.
	SessionToken string `env:"TIDECHAT_TOKEN"`
	// StagingDir is where picked files are snapshotted before upload,
	// relative to the working directory.
	StagingDir string `env:"TIDECHAT_STAGING_DIR" validate:"required"`

	Uploader UploaderKind `env:"TIDECHAT_UPLOADER" validate:"oneof=http s3"`

	// S3 settings, used only when Uploader is "s3".
	S3Region       string `env:"TIDECHAT_S3_REGION"`
	S3BaseEndpoint string `env:"TIDECHAT_S3_ENDPOINT" validate:"omitempty,url"`
	S3AccessKey    string `env:"TIDECHAT_S3_ACCESS_KEY"`
	S3SecretKey    string `env:"TIDECHAT_S3_SECRET_KEY"`
	S3Bucket       string `env:"TIDECHAT_S3_BUCKET" validate:"required_if=Uploader s3"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.tidechat.example"
	c.FilesBaseURL = "https://files.tidechat.example"
	c.StagingDir = "staging"
	c.Uploader = UploaderHTTP
	c.S3Region = "us-east-1"
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags, in that
// order, and validates the result.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseJson(cfg)
	parseFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
