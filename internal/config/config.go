// Package config loads service configuration from an optional YAML file
// with environment overrides. Defaults are always usable: the engine
// runs with zero configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "LCA_ENGINE_CONFIG"
	databasePathEnv = "LCA_ENGINE_DB_PATH"
	listenAddrEnv   = "LCA_ENGINE_ADDR"
	logLevelEnv     = "LCA_ENGINE_LOG_LEVEL"
	workerCountEnv  = "LCA_ENGINE_WORKERS"
)

// Config holds all settings for the engine.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Worker   WorkerConfig   `yaml:"worker"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Duration wraps time.Duration so YAML values like "10s" parse.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	ShutdownTimeout Duration `yaml:"shutdownTimeout"`
}

// DatabaseConfig locates the SQLite job database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// WorkerConfig sizes the calculation worker pool.
type WorkerConfig struct {
	Count int `yaml:"count"`
}

// LoggingConfig controls log level and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// Load reads YAML configuration from path (or $LCA_ENGINE_CONFIG when
// path is empty) and applies environment overrides. A missing file is
// not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Database: DatabaseConfig{Path: "lca-engine.db"},
		Worker:   WorkerConfig{Count: 4},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databasePathEnv); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(listenAddrEnv); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(workerCountEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Worker.Count = n
		}
	}
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if c.Database.Path == "" {
		c.Database.Path = def.Database.Path
	}
	if c.Worker.Count <= 0 {
		c.Worker.Count = def.Worker.Count
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
}
