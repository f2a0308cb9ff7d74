package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Generation GenerationConfig
	Output     OutputConfig
}

type GenerationConfig struct {
	CustomerCount int
	ProductCount  int
	OrderCount    int
	MinLineItems  int
	MaxLineItems  int
	Seed          uint64
}

type OutputConfig struct {
	Dir string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Generation: GenerationConfig{
			CustomerCount: getEnvInt("DATAGEN_CUSTOMER_COUNT", 200),
			ProductCount:  getEnvInt("DATAGEN_PRODUCT_COUNT", 50),
			OrderCount:    getEnvInt("DATAGEN_ORDER_COUNT", 200),
			MinLineItems:  getEnvInt("DATAGEN_MIN_LINE_ITEMS", 1),
			MaxLineItems:  getEnvInt("DATAGEN_MAX_LINE_ITEMS", 5),
			Seed:          getEnvUint64("DATAGEN_SEED", 0),
		},
		Output: OutputConfig{
			Dir: getEnv("DATAGEN_OUTPUT_DIR", "reports"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	g := c.Generation
	if g.CustomerCount < 1 {
		return fmt.Errorf("customer count must be at least 1, got %d", g.CustomerCount)
	}
	if g.ProductCount < 1 {
		return fmt.Errorf("product count must be at least 1, got %d", g.ProductCount)
	}
	if g.OrderCount < 1 {
		return fmt.Errorf("order count must be at least 1, got %d", g.OrderCount)
	}
	if g.MinLineItems < 1 {
		return fmt.Errorf("min line items must be at least 1, got %d", g.MinLineItems)
	}
	if g.MaxLineItems < g.MinLineItems {
		return fmt.Errorf("max line items (%d) must not be below min line items (%d)", g.MaxLineItems, g.MinLineItems)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}
