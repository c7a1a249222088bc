// Package config holds the server configuration. Values are resolved from
// defaults, then an optional YAML file, then STOREFRONT_* environment variables.
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

const (
	EnvPort            = "STOREFRONT_PORT"
	EnvDirectoryFile   = "STOREFRONT_DIRECTORY_FILE"
	EnvDirectoryDriver = "STOREFRONT_DIRECTORY_DRIVER"
	EnvDirectoryDSN    = "STOREFRONT_DIRECTORY_DSN"
	EnvLogLevel        = "STOREFRONT_LOG_LEVEL"
)

// Config is the application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Directory DirectoryConfig `yaml:"directory"`
	LogLevel  string          `yaml:"log_level"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// DirectoryConfig selects where users are loaded from: either a fixture file
// or a SQL database.
type DirectoryConfig struct {
	File   string `yaml:"file"`
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// UsesSQL reports whether the directory is loaded from a database.
func (d DirectoryConfig) UsesSQL() bool {
	return d.Driver != ""
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		Directory: DirectoryConfig{
			File: "data/users.json",
		},
		LogLevel: "info",
	}
}

// Load returns the configuration read from the YAML file at path, with
// environment overrides applied. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if port := os.Getenv(EnvPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, port, err)
		}
		cfg.Server.Port = p
	}
	if file := os.Getenv(EnvDirectoryFile); file != "" {
		cfg.Directory.File = file
	}
	if driver := os.Getenv(EnvDirectoryDriver); driver != "" {
		cfg.Directory.Driver = driver
	}
	if dsn := os.Getenv(EnvDirectoryDSN); dsn != "" {
		cfg.Directory.DSN = dsn
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	return nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}

	if c.Directory.UsesSQL() {
		if c.Directory.DSN == "" {
			return errors.New("directory dsn is required when a driver is set")
		}
	} else if c.Directory.File == "" {
		return errors.New("directory file or driver is required")
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
