package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the console.
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	JWT     JWTConfig
	Redis   RedisConfig
	I18n    I18nConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// BackendConfig points at the REST backend this console fronts. The backend
// owns all business logic; the console never talks to a database of its own.
type BackendConfig struct {
	BaseURL string
	Locale  string
}

type JWTConfig struct {
	Secret     string
	SessionTTL time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	Username string
	DB       int
}

type I18nConfig struct {
	CatalogPath   string
	DefaultLocale string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:8000"),
			Locale:  getEnv("BACKEND_LOCALE", "en"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "your-secret-key"),
			SessionTTL: time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     fmt.Sprintf("%s:%d", getEnv("REDIS_HOST", "localhost"), getEnvAsInt("REDIS_PORT", 6379)),
			Password: getEnv("REDIS_PASSWORD", ""),
			Username: getEnv("REDIS_USERNAME", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		I18n: I18nConfig{
			CatalogPath:   getEnv("I18N_CATALOG_PATH", "locales/messages.yaml"),
			DefaultLocale: getEnv("I18N_DEFAULT_LOCALE", "en"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
