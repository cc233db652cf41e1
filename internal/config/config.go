// Package config provides Viper-based configuration loading for the creator
// service.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	// Address is the "host:port" of the Redis instance.
	Address string `mapstructure:"address"`
	// PoolSize is the maximum number of pooled connections.
	PoolSize int `mapstructure:"pool_size"`
	// MinIdleConns is the minimum number of idle connections kept open.
	MinIdleConns int `mapstructure:"min_idle_conns"`
	// UseTLS enables TLS on the connection.
	UseTLS bool `mapstructure:"use_tls"`
}

// CatalogConfig holds reference-catalog settings.
type CatalogConfig struct {
	// Dir is the directory containing the catalog YAML files.
	Dir string `mapstructure:"dir"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "text".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Redis   RedisConfig   `mapstructure:"redis"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	if c.Redis.Address == "" {
		errs = append(errs, "redis.address must not be empty")
	}
	if c.Redis.PoolSize < 0 {
		errs = append(errs, fmt.Sprintf("redis.pool_size must be >= 0, got %d", c.Redis.PoolSize))
	}
	if c.Catalog.Dir == "" {
		errs = append(errs, "catalog.dir must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, text], got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path (optional), applies
// CREATOR_-prefixed environment variable overrides, and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("CREATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.use_tls", false)

	v.SetDefault("catalog.dir", "catalog")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
