// Package config provides Viper-based hierarchical configuration
// management: defaults, then an optional YAML config file, then
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Currency struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Target         string `mapstructure:"target" yaml:"target"`
		DefaultRate    string `mapstructure:"default_rate" yaml:"default_rate"`
		Endpoint       string `mapstructure:"endpoint" yaml:"endpoint"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"currency" yaml:"currency"`

	Accounts struct {
		File        string            `mapstructure:"file" yaml:"file"`
		UnknownName string            `mapstructure:"unknown_name" yaml:"unknown_name"`
		Placeholder struct {
			Number string `mapstructure:"number" yaml:"number"`
			Name   string `mapstructure:"name" yaml:"name"`
		} `mapstructure:"placeholder" yaml:"placeholder"`
		Names map[string]string `mapstructure:"names" yaml:"names"`
	} `mapstructure:"accounts" yaml:"accounts"`
}

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file if one exists in
// the working directory or its parent.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-extract")
	v.AddConfigPath(".statement-extract")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars; a broken config file
			// should not take the whole tool down.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("currency.enabled", false)
	v.SetDefault("currency.target", "USD")
	v.SetDefault("currency.default_rate", "1.00")
	v.SetDefault("currency.endpoint", "https://open.er-api.com/v6/latest/USD")
	v.SetDefault("currency.timeout_seconds", 10)

	v.SetDefault("accounts.file", "")
	v.SetDefault("accounts.unknown_name", "Unknown")
	v.SetDefault("accounts.placeholder.number", "")
	v.SetDefault("accounts.placeholder.name", "Statement Account")
	v.SetDefault("accounts.names", map[string]string{})
}

func validateConfig(config *Config) error {
	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", config.Log.Level)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", config.CSV.Delimiter)
	}

	if _, err := decimal.NewFromString(config.Currency.DefaultRate); err != nil {
		return fmt.Errorf("currency default_rate %q is not a decimal: %w", config.Currency.DefaultRate, err)
	}
	if config.Currency.TimeoutSeconds <= 0 {
		return fmt.Errorf("currency timeout_seconds must be positive, got %d", config.Currency.TimeoutSeconds)
	}

	return nil
}

// DefaultRate returns the configured fallback conversion rate.
func (c *Config) DefaultRate() decimal.Decimal {
	rate, err := decimal.NewFromString(c.Currency.DefaultRate)
	if err != nil {
		return decimal.NewFromInt(1)
	}
	return rate
}

// DelimiterRune returns the configured CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	return []rune(c.CSV.Delimiter)[0]
}
