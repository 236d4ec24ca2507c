package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Predictor PredictorConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type AuthConfig struct {
	JWTSecret string
}

// PredictorConfig holds configuration for the upstream prediction service.
type PredictorConfig struct {
	// BaseURL is the origin of the prediction service; all requests
	// resolve against it
	BaseURL string
	// Variant selects the request/response schema: "demographic" or "economic"
	Variant string
	// Timeout is the per-request deadline for upstream calls
	Timeout time.Duration
	// MaxRequestsPerSecond throttles outbound calls to the upstream
	MaxRequestsPerSecond int
	// CurrencyPrefix is prepended to the rendered cost (M = Lesotho Loti)
	CurrencyPrefix string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("SERVER_PORT", 8080),
			Env:  getEnv("ENV", "development"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-prod"),
		},
		Predictor: PredictorConfig{
			BaseURL:              getEnv("PREDICTOR_BASE_URL", "http://localhost:10000"),
			Variant:              getEnv("PREDICTOR_VARIANT", "demographic"),
			Timeout:              time.Duration(getEnvInt("PREDICTOR_TIMEOUT_SECONDS", 30)) * time.Second,
			MaxRequestsPerSecond: getEnvInt("PREDICTOR_MAX_RPS", 10),
			CurrencyPrefix:       getEnv("PREDICTOR_CURRENCY_PREFIX", "M"),
		},
	}

	if cfg.Predictor.Variant != "demographic" && cfg.Predictor.Variant != "economic" {
		return nil, fmt.Errorf("unknown PREDICTOR_VARIANT %q (want demographic or economic)", cfg.Predictor.Variant)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
