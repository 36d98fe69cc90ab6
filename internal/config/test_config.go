package config

import "time"

func LoadTestConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8081,
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:8000",
			Locale:  "en",
		},
		JWT: JWTConfig{
			Secret:     "test-secret",
			SessionTTL: time.Hour,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		},
		I18n: I18nConfig{
			DefaultLocale: "en",
		},
	}
}
