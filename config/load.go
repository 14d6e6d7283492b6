package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/umt-kit/strfmt/internal/errors"
)

// LoadConfig reads, defaults and validates the YAML configuration at path.
// Environment variables are not consulted; see LoadConfigWithEnvOverrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("configuration file %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document, applies defaults and validates the result.
// Validation failures are *errors.Error values of kind ErrBadConfig whose
// cause is a ValidationError.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewError(errors.ErrBadConfig, "cannot parse YAML").WithCause(err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, errors.NewError(errors.ErrBadConfig, err.Error()).WithCause(err)
	}
	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads the file at path and then applies
// STRFMT_LOGGING_LEVEL, STRFMT_LOGGING_FORMAT and STRFMT_RENDER_STRICT.
// Environment variables take precedence over the file.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg, overrideAndValidate(cfg)
}

// FromEnv returns the default configuration with environment overrides
// applied, for runs without a configuration file.
func FromEnv() (*Config, error) {
	cfg := Default()
	return cfg, overrideAndValidate(cfg)
}

func overrideAndValidate(cfg *Config) error {
	applyEnvOverrides(cfg)
	if err := Validate(cfg); err != nil {
		return errors.NewError(errors.ErrBadConfig, "after environment overrides: "+err.Error()).WithCause(err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("STRFMT_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("STRFMT_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("STRFMT_RENDER_STRICT"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Render.Strict = b
		}
	}
}
