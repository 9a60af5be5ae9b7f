package config

import (
	"os"
	"strconv"
)

// Config is the process configuration of the sampling tool.
type Config struct {
	Sampler SamplerConfig
	Logging LoggingConfig
}

type SamplerConfig struct {
	Recipe    string
	Model     string
	Precision int
	Validate  bool
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		Sampler: SamplerConfig{
			Recipe:    getEnvStr("NOISE_RECIPE", ""),
			Model:     getEnvStr("NOISE_MODEL", "volume"),
			Precision: getEnvInt("NOISE_PRECISION", 6),
			Validate:  getEnvBool("NOISE_VALIDATE", true),
		},
		Logging: LoggingConfig{
			Level:  getEnvStr("LOG_LEVEL", "info"),
			Format: getEnvStr("LOG_FORMAT", "text"),
		},
	}
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
