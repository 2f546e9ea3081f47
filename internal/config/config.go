// Package config loads canvasctl configuration from HCL or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/edukit/go-canvas/pkg/canvas"
)

// EnvAccessToken overrides the configured access token when set.
const EnvAccessToken = "CANVAS_ACCESS_TOKEN"

// Config is the canvasctl configuration.
type Config struct {
	// BaseURL is the Canvas installation root, e.g.
	// "https://canvas.example.edu".
	BaseURL string `hcl:"base_url" yaml:"base_url"`

	// AccessToken authenticates API requests. The CANVAS_ACCESS_TOKEN
	// environment variable takes precedence so tokens can stay out of
	// config files.
	AccessToken string `hcl:"access_token,optional" yaml:"access_token"`

	// TLSVerify disables certificate verification when false. Defaults
	// to true.
	TLSVerify *bool `hcl:"tls_verify,optional" yaml:"tls_verify"`

	// TimeoutSeconds bounds each HTTP request. Zero means the client
	// default.
	TimeoutSeconds int `hcl:"timeout_seconds,optional" yaml:"timeout_seconds"`

	// MaxRetries caps retry attempts for transient failures. Zero means
	// the client default.
	MaxRetries int `hcl:"max_retries,optional" yaml:"max_retries"`

	// LogLevel sets the logger level ("trace" through "error").
	LogLevel string `hcl:"log_level,optional" yaml:"log_level"`
}

// Load reads a config file from fs, dispatching on extension: .hcl is
// parsed as HCL, .yaml/.yml as YAML. The access token environment
// variable, when set, wins over the file's value.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch ext := filepath.Ext(path); ext {
	case ".hcl":
		if err := hclsimple.Decode(path, data, nil, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse HCL config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q (want .hcl, .yaml or .yml)", ext)
	}

	if token := os.Getenv(EnvAccessToken); token != "" {
		cfg.AccessToken = token
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields the client cannot default.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.AccessToken == "" {
		return fmt.Errorf("access_token is required (set it in the config file or %s)", EnvAccessToken)
	}
	return nil
}

// ClientConfig builds the API client configuration.
func (c *Config) ClientConfig(log hclog.Logger) *canvas.Config {
	cfg := canvas.DefaultConfig()
	cfg.BaseURL = c.BaseURL
	cfg.AccessToken = c.AccessToken
	cfg.Logger = log
	if c.TLSVerify != nil {
		cfg.TLSVerify = c.TLSVerify
	}
	if c.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	if c.MaxRetries > 0 {
		cfg.MaxRetries = c.MaxRetries
	}
	return cfg
}

// LoggerLevel maps the configured level to hclog, defaulting to info.
func (c *Config) LoggerLevel() hclog.Level {
	if c.LogLevel == "" {
		return hclog.Info
	}
	return hclog.LevelFromString(c.LogLevel)
}
