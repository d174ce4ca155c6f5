package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("STORAGE_PRESIGN_EXPIRES", "")
	t.Setenv("STORAGE_URL_CACHE_TTL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Minute, cfg.Storage.PresignExpires)
	assert.Equal(t, 5*time.Minute, cfg.Storage.URLCacheTTL)
	assert.Equal(t, "https://dapi.kakao.com", cfg.Kakao.BaseURL)
	assert.True(t, cfg.Task.StoreBackfillEnabled)
	assert.Equal(t, 6*time.Hour, cfg.Task.StoreBackfillRetryBackoff)
	assert.Equal(t, "", cfg.Search.RegionPrefix)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("SEARCH_RATE_BURST", "10")
	t.Setenv("STORE_BACKFILL_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://eatda.kr, https://www.eatda.kr,")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 10, cfg.Search.RateBurst)
	assert.False(t, cfg.Task.StoreBackfillEnabled)
	assert.Equal(t, []string{"https://eatda.kr", "https://www.eatda.kr"}, cfg.Server.CORSAllowedOrigins)
}

func TestLoad_MalformedFallsBack(t *testing.T) {
	t.Setenv("KAKAO_TIMEOUT", "soon")
	t.Setenv("SEARCH_RATE_PER_SECOND", "fast")

	cfg := Load()

	assert.Equal(t, 3*time.Second, cfg.Kakao.Timeout)
	assert.Equal(t, 2.0, cfg.Search.RatePerSecond)
}
