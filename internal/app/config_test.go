package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadAPIConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "API_BASE_PATH", "UPSTREAM_BASE_URL", "UPSTREAM_TIMEOUT", "UPSTREAM_WAIT"} {
			t.Setenv(k, "")
		}

		cfg := LoadAPIConfig()

		assert.Equal(t, APIConfig{
			Port:            "8111",
			BasePath:        "/api/v1",
			UpstreamBaseURL: "http://localhost:8112/api/v1/employee",
			UpstreamTimeout: 10 * time.Second,
			UpstreamWait:    30 * time.Second,
		}, cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("UPSTREAM_TIMEOUT", "250ms")
		t.Setenv("UPSTREAM_WAIT", "not-a-duration")

		cfg := LoadAPIConfig()

		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, 250*time.Millisecond, cfg.UpstreamTimeout)
		assert.Equal(t, 30*time.Second, cfg.UpstreamWait)
	})
}

func TestLoadStoreConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("SEED_COUNT", "5")
	t.Setenv("SEED", "42")

	cfg := LoadStoreConfig()

	assert.Equal(t, StoreConfig{
		Port:           "8112",
		RateLimitRPS:   2.5,
		RateLimitBurst: 10,
		SeedCount:      5,
		Seed:           42,
	}, cfg)
}

func TestUpstreamHealthURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8112/healthz", upstreamHealthURL("http://localhost:8112/api/v1/employee"))
	assert.Equal(t, "https://store.internal/healthz", upstreamHealthURL("https://store.internal/v2/employee?x=1"))
}
