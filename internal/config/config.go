// Package config resolves CLI settings from flags, environment variables
// and the user config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"errstore/pkg/errx"
)

// Environment variables read by Resolve.
const (
	EnvConfig   = "ERRSTORE_CONFIG"
	EnvCatalogs = "ERRSTORE_CATALOGS"
	EnvFormat   = "ERRSTORE_FORMAT"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Sentinel errors for config operations.
var (
	ErrReadConfig      = errors.New("failed to read config")
	ErrUnmarshalConfig = errors.New("failed to unmarshal config")
	ErrSaveConfig      = errors.New("failed to save config")
	ErrInvalidFormat   = errors.New("invalid output format")
)

// Config holds the CLI settings.
type Config struct {
	Catalogs  []string `yaml:"catalogs"`
	Format    string   `yaml:"format,omitempty"`
	Overwrite bool     `yaml:"overwrite,omitempty"`
}

// Path returns the config file location: $ERRSTORE_CONFIG, or
// ~/.errstore/config.yaml.
func Path() (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".errstore", "config.yaml"), nil
}

// Load reads the config file at path. It returns (nil, nil) when the
// file does not exist.
func Load(path string) (*Config, error) {
	// #nosec G304 -- path is scoped to the user's config directory or set explicitly.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errx.WrapConfig(fmt.Sprintf("failed to read config: %v", err), err).
			WithBase(ErrReadConfig).
			WithContext("path", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errx.WrapConfig(fmt.Sprintf("failed to unmarshal config: %v", err), err).
			WithBase(ErrUnmarshalConfig).
			WithContext("path", path)
	}
	return &cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errx.WrapConfig("failed to create config directory", err).WithBase(ErrSaveConfig)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errx.WrapConfig("failed to marshal config", err).WithBase(ErrSaveConfig)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errx.WrapConfig("failed to write config", err).
			WithBase(ErrSaveConfig).
			WithContext("path", path)
	}
	return nil
}

// Resolve returns the effective config using precedence:
// flags > environment variables (ERRSTORE_*) > config file.
// Format defaults to json.
func Resolve(flags *Config) (*Config, error) {
	var cfg Config

	path, err := Path()
	if err == nil {
		fileCfg, err := Load(path)
		if err != nil {
			return nil, err
		}
		if fileCfg != nil {
			cfg = *fileCfg
		}
	}

	if env := os.Getenv(EnvCatalogs); env != "" {
		cfg.Catalogs = splitList(env)
	}
	if env := os.Getenv(EnvFormat); env != "" {
		cfg.Format = env
	}

	if flags != nil {
		if len(flags.Catalogs) > 0 {
			cfg.Catalogs = flags.Catalogs
		}
		if flags.Format != "" {
			cfg.Format = flags.Format
		}
		if flags.Overwrite {
			cfg.Overwrite = true
		}
	}

	if cfg.Format == "" {
		cfg.Format = FormatJSON
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Format != FormatJSON && cfg.Format != FormatYAML {
		return nil, errx.WrapConfig(fmt.Sprintf("invalid output format %q (want json or yaml)", cfg.Format), ErrInvalidFormat).
			WithBase(ErrInvalidFormat)
	}
	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
