package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ==================== Config ====================

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Kakao    KakaoConfig
	Storage  StorageConfig
	Search   SearchConfig
	Task     TaskConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port               string
	Mode               string // gin mode: debug | release | test
	CORSAllowedOrigins []string
}

type DatabaseConfig struct {
	DSN string
	// SQL logging of every statement; off in production
	Debug bool
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Issuer     string
}

type KakaoConfig struct {
	RestAPIKey string
	BaseURL    string
	Timeout    time.Duration
	PageSize   int
}

type StorageConfig struct {
	Provider       string // "s3" | "local"
	Bucket         string
	Region         string
	AccessKey      string
	SecretKey      string
	Endpoint       string
	PresignExpires time.Duration
	URLCacheTTL    time.Duration
	LocalBaseURL   string
}

type SearchConfig struct {
	RegionPrefix  string
	RatePerSecond float64
	RateBurst     int
}

type TaskConfig struct {
	StoreBackfillEnabled      bool
	StoreBackfillCron         string
	StoreBackfillBatch        int
	StoreBackfillRetryBackoff time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// ==================== Load ====================

// Load reads an optional .env file and then the environment.
// Malformed numeric or duration values fall back to their defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Mode:               getEnv("GIN_MODE", "release"),
			CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			DSN:   getEnv("DATABASE_DSN", "host=localhost user=eatda password=eatda dbname=eatda port=5432 sslmode=disable TimeZone=Asia/Seoul"),
			Debug: getEnvBool("DATABASE_DEBUG", false),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "eatda-secret-key-change-in-production"),
			AccessTTL:  getEnvDuration("JWT_ACCESS_TTL", 2*time.Hour),
			RefreshTTL: getEnvDuration("JWT_REFRESH_TTL", 14*24*time.Hour),
			Issuer:     getEnv("JWT_ISSUER", "eatda"),
		},
		Kakao: KakaoConfig{
			RestAPIKey: getEnv("KAKAO_REST_API_KEY", ""),
			BaseURL:    getEnv("KAKAO_BASE_URL", "https://dapi.kakao.com"),
			Timeout:    getEnvDuration("KAKAO_TIMEOUT", 3*time.Second),
			PageSize:   getEnvInt("KAKAO_PAGE_SIZE", 15),
		},
		Storage: StorageConfig{
			Provider:       getEnv("STORAGE_PROVIDER", "s3"),
			Bucket:         getEnv("AWS_BUCKET", ""),
			Region:         getEnv("AWS_REGION", "ap-northeast-2"),
			AccessKey:      getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey:      getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:       getEnv("STORAGE_ENDPOINT", ""),
			PresignExpires: getEnvDuration("STORAGE_PRESIGN_EXPIRES", 10*time.Minute),
			URLCacheTTL:    getEnvDuration("STORAGE_URL_CACHE_TTL", 5*time.Minute),
			LocalBaseURL:   getEnv("STORAGE_LOCAL_BASE_URL", "http://localhost:8080/images"),
		},
		Search: SearchConfig{
			RegionPrefix:  getEnv("SEARCH_REGION_PREFIX", ""),
			RatePerSecond: getEnvFloat("SEARCH_RATE_PER_SECOND", 2),
			RateBurst:     getEnvInt("SEARCH_RATE_BURST", 5),
		},
		Task: TaskConfig{
			StoreBackfillEnabled:      getEnvBool("STORE_BACKFILL_ENABLED", true),
			StoreBackfillCron:         getEnv("STORE_BACKFILL_CRON", "0 */30 * * * *"),
			StoreBackfillBatch:        getEnvInt("STORE_BACKFILL_BATCH", 50),
			StoreBackfillRetryBackoff: getEnvDuration("STORE_BACKFILL_RETRY_BACKOFF", 6*time.Hour),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// ==================== Helpers ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config: %s=%q is not a number, using %v", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("config: %s=%q is not a boolean, using %v", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config: %s=%q is not a duration, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var list []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
