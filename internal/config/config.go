// Package config loads brandlint settings from flags, environment variables
// and an optional brandlint.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jmylchreest/brandlint/internal/logging"
)

// Keys shared with command-line flags.
const (
	KeyLogLevel               = "log-level"
	KeyLogJSON                = "log-json"
	KeyWarnInformationalPairs = "validation.warn-informational-pairs"
	KeyServerAddr             = "server.addr"
	KeyServerReadTimeout      = "server.read-timeout"
	KeyServerWriteTimeout     = "server.write-timeout"
	KeyServerAllowedOrigins   = "server.allowed-origins"
	KeyPresetWorkers          = "presets.workers"
)

const (
	// EnvPrefix is prepended to every environment variable, e.g. BRANDLINT_LOG_LEVEL.
	EnvPrefix = "BRANDLINT"
	// FileName is the config file name without extension.
	FileName = "brandlint"

	DefaultServerAddr    = "127.0.0.1:8787"
	DefaultReadTimeout   = 10 * time.Second
	DefaultWriteTimeout  = 30 * time.Second
	DefaultPresetWorkers = 4
)

// Config is the resolved configuration.
type Config struct {
	LogLevel   string           `mapstructure:"log-level"`
	LogJSON    bool             `mapstructure:"log-json"`
	Validation ValidationConfig `mapstructure:"validation"`
	Server     ServerConfig     `mapstructure:"server"`
	Presets    PresetsConfig    `mapstructure:"presets"`
}

// ValidationConfig holds validator policy.
type ValidationConfig struct {
	WarnInformationalPairs bool `mapstructure:"warn-informational-pairs"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
	// AllowedOrigins enables CORS for browser clients such as a settings console.
	AllowedOrigins []string `mapstructure:"allowed-origins"`
}

// PresetsConfig holds preset preview settings.
type PresetsConfig struct {
	Workers int `mapstructure:"workers"`
}

// NewViper returns a viper instance with defaults and environment binding set up.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyWarnInformationalPairs, false)
	v.SetDefault(KeyServerAddr, DefaultServerAddr)
	v.SetDefault(KeyServerReadTimeout, DefaultReadTimeout)
	v.SetDefault(KeyServerWriteTimeout, DefaultWriteTimeout)
	v.SetDefault(KeyServerAllowedOrigins, []string{})
	v.SetDefault(KeyPresetWorkers, DefaultPresetWorkers)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file into v and returns the resolved configuration.
// An explicit path must exist; otherwise brandlint.yaml is searched for in the
// working directory and the user config directory, and a missing file is fine.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Server.Addr == "" {
		return errors.New("invalid config: server.addr must not be empty")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errors.New("invalid config: server timeouts must not be negative")
	}
	if c.Presets.Workers < 1 {
		return fmt.Errorf("invalid config: presets.workers must be at least 1 (got %d)", c.Presets.Workers)
	}
	return nil
}
