package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep a real user config out of the test

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.False(t, cfg.Currency.Enabled)
	assert.Equal(t, "USD", cfg.Currency.Target)
	assert.Equal(t, "1.00", cfg.Currency.DefaultRate)
	assert.Equal(t, 10, cfg.Currency.TimeoutSeconds)
	assert.Equal(t, "Unknown", cfg.Accounts.UnknownName)
	assert.Equal(t, "Statement Account", cfg.Accounts.Placeholder.Name)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STMT_LOG_LEVEL", "debug")
	t.Setenv("STMT_CURRENCY_TARGET", "EUR")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "EUR", cfg.Currency.Target)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.CSV.Delimiter = ","
		cfg.Currency.DefaultRate = "1.00"
		cfg.Currency.TimeoutSeconds = 10
		return cfg
	}

	assert.NoError(t, validateConfig(base()))

	bad := base()
	bad.Log.Level = "verbose"
	assert.Error(t, validateConfig(bad))

	bad = base()
	bad.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(bad))

	bad = base()
	bad.Currency.DefaultRate = "not-a-rate"
	assert.Error(t, validateConfig(bad))

	bad = base()
	bad.Currency.TimeoutSeconds = 0
	assert.Error(t, validateConfig(bad))
}

func TestDefaultRate(t *testing.T) {
	cfg := &Config{}
	cfg.Currency.DefaultRate = "0.91"
	assert.Equal(t, "0.91", cfg.DefaultRate().String())

	cfg.Currency.DefaultRate = "garbage"
	assert.Equal(t, "1", cfg.DefaultRate().String(), "unparseable rate falls back to identity")
}

func TestDelimiterRune(t *testing.T) {
	cfg := &Config{}
	cfg.CSV.Delimiter = ";"
	assert.Equal(t, ';', cfg.DelimiterRune())
}
