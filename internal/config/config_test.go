package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATAGEN_CUSTOMER_COUNT",
		"DATAGEN_PRODUCT_COUNT",
		"DATAGEN_ORDER_COUNT",
		"DATAGEN_MIN_LINE_ITEMS",
		"DATAGEN_MAX_LINE_ITEMS",
		"DATAGEN_SEED",
		"DATAGEN_OUTPUT_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Generation.CustomerCount)
	assert.Equal(t, 50, cfg.Generation.ProductCount)
	assert.Equal(t, 200, cfg.Generation.OrderCount)
	assert.Equal(t, 1, cfg.Generation.MinLineItems)
	assert.Equal(t, 5, cfg.Generation.MaxLineItems)
	assert.Equal(t, uint64(0), cfg.Generation.Seed)
	assert.Equal(t, "reports", cfg.Output.Dir)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATAGEN_CUSTOMER_COUNT", "3")
	t.Setenv("DATAGEN_PRODUCT_COUNT", "2")
	t.Setenv("DATAGEN_ORDER_COUNT", "1")
	t.Setenv("DATAGEN_SEED", "42")
	t.Setenv("DATAGEN_OUTPUT_DIR", "out")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Generation.CustomerCount)
	assert.Equal(t, 2, cfg.Generation.ProductCount)
	assert.Equal(t, 1, cfg.Generation.OrderCount)
	assert.Equal(t, uint64(42), cfg.Generation.Seed)
	assert.Equal(t, "out", cfg.Output.Dir)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATAGEN_CUSTOMER_COUNT", "lots")
	t.Setenv("DATAGEN_SEED", "-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Generation.CustomerCount)
	assert.Equal(t, uint64(0), cfg.Generation.Seed)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Generation: GenerationConfig{
				CustomerCount: 200,
				ProductCount:  50,
				OrderCount:    200,
				MinLineItems:  1,
				MaxLineItems:  5,
			},
			Output: OutputConfig{Dir: "reports"},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero customers", func(c *Config) { c.Generation.CustomerCount = 0 }},
		{"negative products", func(c *Config) { c.Generation.ProductCount = -1 }},
		{"zero orders", func(c *Config) { c.Generation.OrderCount = 0 }},
		{"zero min line items", func(c *Config) { c.Generation.MinLineItems = 0 }},
		{"max below min", func(c *Config) { c.Generation.MinLineItems = 4; c.Generation.MaxLineItems = 2 }},
		{"empty output dir", func(c *Config) { c.Output.Dir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
