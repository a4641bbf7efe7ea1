package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/forgo/sorm/pkg/database"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Scheme    string `yaml:"scheme" env:"DB_SCHEME"`
	Host      string `yaml:"host" env:"DB_HOST"`
	Port      string `yaml:"port" env:"DB_PORT"`
	Namespace string `yaml:"namespace" env:"DB_NAMESPACE"`
	Database  string `yaml:"database" env:"DB_DATABASE"`
	User      string `yaml:"user" env:"DB_USER"`
	Password  string `yaml:"password" env:"DB_PASSWORD"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

var (
	validSchemes    = []string{"ws", "wss", "http", "https"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
)

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Scheme:    "ws",
			Host:      "localhost",
			Port:      "8000",
			Namespace: "sorm",
			Database:  "main",
			User:      "root",
			Password:  "root",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	var errs []error

	// Database validation
	if !slices.Contains(validSchemes, c.Database.Scheme) {
		errs = append(errs, fmt.Errorf("DB_SCHEME must be one of %s", strings.Join(validSchemes, ", ")))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}

	// Log validation
	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of %s", strings.Join(validLogLevels, ", ")))
	}
	if !slices.Contains(validLogFormats, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of %s", strings.Join(validLogFormats, ", ")))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// DatabaseConfig converts the settings for the database package
func (c *Config) DatabaseConfig() database.Config {
	return database.Config{
		Scheme:    c.Database.Scheme,
		Host:      c.Database.Host,
		Port:      c.Database.Port,
		User:      c.Database.User,
		Password:  c.Database.Password,
		Namespace: c.Database.Namespace,
		Database:  c.Database.Database,
	}
}

// SlogLevel returns the configured log level
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
