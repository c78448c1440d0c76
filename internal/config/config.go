// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultRSIPeriod       = 14
	DefaultBollingerPeriod = 20
	DefaultBollingerStdDev = 2.0
)

// Config holds library configuration
type Config struct {
	LogLevel        string
	LogPretty       bool
	RSIPeriod       int
	BollingerPeriod int
	BollingerStdDev float64
}

// Load reads configuration from environment variables. A .env file in the
// working directory is honoured when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  getEnv("FINMETRICS_LOG_LEVEL", "info"),
		LogPretty: getEnvBool("FINMETRICS_LOG_PRETTY", false),
	}

	var err error
	if cfg.RSIPeriod, err = getEnvInt("FINMETRICS_RSI_PERIOD", DefaultRSIPeriod); err != nil {
		return nil, err
	}
	if cfg.BollingerPeriod, err = getEnvInt("FINMETRICS_BOLLINGER_PERIOD", DefaultBollingerPeriod); err != nil {
		return nil, err
	}
	if cfg.BollingerStdDev, err = getEnvFloat("FINMETRICS_BOLLINGER_STDDEV", DefaultBollingerStdDev); err != nil {
		return nil, err
	}

	if cfg.RSIPeriod < 1 {
		return nil, fmt.Errorf("FINMETRICS_RSI_PERIOD must be positive, got %d", cfg.RSIPeriod)
	}
	if cfg.BollingerPeriod < 1 {
		return nil, fmt.Errorf("FINMETRICS_BOLLINGER_PERIOD must be positive, got %d", cfg.BollingerPeriod)
	}
	if cfg.BollingerStdDev <= 0 {
		return nil, fmt.Errorf("FINMETRICS_BOLLINGER_STDDEV must be positive, got %g", cfg.BollingerStdDev)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return parsed, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, value)
	}
	return parsed, nil
}
