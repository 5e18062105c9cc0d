package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type StoreConfig struct {
	Port           string
	RateLimitRPS   float64
	RateLimitBurst int
	SeedCount      int
	Seed           int64
}

type APIConfig struct {
	Port            string
	BasePath        string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	UpstreamWait    time.Duration
}

// LoadEnv reads .env when present. Real environment variables win.
func LoadEnv() {
	_ = godotenv.Load()
}

func NewLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func LoadStoreConfig() StoreConfig {
	return StoreConfig{
		Port:           getEnv("PORT", "8112"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		SeedCount:      getEnvInt("SEED_COUNT", 50),
		Seed:           int64(getEnvInt("SEED", 0)),
	}
}

func LoadAPIConfig() APIConfig {
	return APIConfig{
		Port:            getEnv("PORT", "8111"),
		BasePath:        getEnv("API_BASE_PATH", "/api/v1"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:8112/api/v1/employee"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		UpstreamWait:    getEnvDuration("UPSTREAM_WAIT", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
