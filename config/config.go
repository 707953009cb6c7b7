package config

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	APIBaseURL    string
	SessionSecret string
	HTTPTimeout   time.Duration
}

var (
	cfg  *Config
	once sync.Once
)

func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Relying on environment variables.")
		}
		cfg = &Config{
			AppEnv:        os.Getenv("APP_ENV"),
			Port:          os.Getenv("PORT"),
			APIBaseURL:    os.Getenv("API_BASE_URL"),
			SessionSecret: os.Getenv("SESSION_SECRET"),
			HTTPTimeout:   15 * time.Second,
		}
		if cfg.Port == "" {
			cfg.Port = "3000"
		}
		if cfg.APIBaseURL == "" {
			cfg.APIBaseURL = "http://localhost:8080/api"
		}
		if d := os.Getenv("HTTP_TIMEOUT"); d != "" {
			if parsed, err := time.ParseDuration(d); err == nil {
				cfg.HTTPTimeout = parsed
			}
		}
	})
	return cfg
}
