package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Storage StorageConfig
	Session SessionConfig
	Redis   RedisConfig
	Observ  ObservabilityConfig
	Admin   AdminConfig
}

type AppConfig struct {
	Env string
}

type APIConfig struct {
	BaseURL string
	// TimeoutSeconds of 0 disables the client timeout; a hung request
	// then blocks until the context is cancelled.
	TimeoutSeconds int
}

type StorageConfig struct {
	Endpoint string
	Bucket   string
	Key      string
}

type SessionConfig struct {
	// Backend selects where the session credential is persisted: "file" or "redis".
	Backend  string
	FilePath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

// AdminConfig carries the credentials the app shell logs in with when no
// persisted session exists.
type AdminConfig struct {
	Email    string
	Password string
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	apiTimeout, _ := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "0"))

	cfg := &Config{
		App: AppConfig{
			Env: getEnv("ENV", "development"),
		},
		API: APIConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:3004/api"),
			TimeoutSeconds: apiTimeout,
		},
		Storage: StorageConfig{
			Endpoint: getEnv("STORAGE_ENDPOINT", "http://localhost:8000/storage/v1"),
			Bucket:   getEnv("STORAGE_BUCKET", "warehouse"),
			Key:      getEnv("STORAGE_KEY", ""),
		},
		Session: SessionConfig{
			Backend:  getEnv("SESSION_BACKEND", "file"),
			FilePath: getEnv("SESSION_FILE", ".admin-console/session.json"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}

	log.Printf("Config loaded: env=%s, api=%s, session=%s", cfg.App.Env, cfg.API.BaseURL, cfg.Session.Backend)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
