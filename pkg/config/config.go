package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hdrfmt/pkg/errors"
	"hdrfmt/pkg/headers"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr         = "127.0.0.1:8080"
	DefaultMaxBodyBytes = 1 << 20
)

// Config holds hdrfmt settings loaded from YAML and the environment.
type Config struct {
	Output           string      `yaml:"output"`
	Canonical        bool        `yaml:"canonical"`
	Mask             bool        `yaml:"mask"`
	SensitiveHeaders []string    `yaml:"sensitive_headers,omitempty"`
	Serve            ServeConfig `yaml:"serve"`
}

type ServeConfig struct {
	Addr         string `yaml:"addr"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Output: string(headers.StyleText),
		Serve: ServeConfig{
			Addr:         DefaultAddr,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}

// Load reads the config file at path, or the default location when path is
// empty, then applies HDRFMT_* environment overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
		}
		path = p
	}
	return loadFromPath(path)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "hdrfmt", "config.yaml"), nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}

// Style returns the validated output style.
func (c *Config) Style() headers.Style {
	style, err := headers.ParseStyle(c.Output)
	if err != nil {
		return headers.StyleText
	}
	return style
}

// Transforms returns the header transforms enabled by the config, in the
// order they run: canonical names first, then masking.
func (c *Config) Transforms() []headers.Transform {
	var transforms []headers.Transform
	if c.Canonical {
		transforms = append(transforms, headers.Canonical)
	}
	if c.Mask {
		transforms = append(transforms, headers.Mask(c.SensitiveHeaders...))
	}
	return transforms
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := Default()

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvironmentOverrides(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// No file: defaults and env vars only.
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

// applyEnvironmentOverrides lets HDRFMT_* variables override the file.
// Unparsable values are config errors, like invalid file values.
func applyEnvironmentOverrides(cfg *Config) error {
	if v := os.Getenv("HDRFMT_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if err := getEnvBool("HDRFMT_CANONICAL", &cfg.Canonical); err != nil {
		return err
	}
	if err := getEnvBool("HDRFMT_MASK", &cfg.Mask); err != nil {
		return err
	}
	if v := os.Getenv("HDRFMT_SENSITIVE_HEADERS"); v != "" {
		cfg.SensitiveHeaders = append(cfg.SensitiveHeaders, strings.Split(v, ",")...)
	}
	if v := os.Getenv("HDRFMT_ADDR"); v != "" {
		cfg.Serve.Addr = v
	}
	if v := os.Getenv("HDRFMT_MAX_BODY_BYTES"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.ConfigError(fmt.Sprintf("HDRFMT_MAX_BODY_BYTES must be an integer, got %q", v))
		}
		cfg.Serve.MaxBodyBytes = parsed
	}
	return nil
}

// getEnvBool sets *dst from key when key is set.
func getEnvBool(key string, dst *bool) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("%s must be true or false, got %q", key, value))
	}
	*dst = parsed
	return nil
}

// validateConfig rejects settings no command could run with
func validateConfig(cfg *Config) error {
	if _, err := headers.ParseStyle(cfg.Output); err != nil {
		return errors.ConfigError(err.Error())
	}
	if cfg.Serve.Addr == "" {
		return errors.ConfigError("serve address must not be empty")
	}
	if cfg.Serve.MaxBodyBytes <= 0 {
		return errors.ConfigError("serve.max_body_bytes must be positive")
	}
	return nil
}
