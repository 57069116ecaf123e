package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		if os.Getenv("APP_ENV") == "" {
			log.Printf("Warning: APP_ENV not set, defaulting to development")
		}
		appConfig = &AppConfig{
			Name:    envOr("APP_NAME", "recruitai"),
			Env:     envOr("APP_ENV", "development"),
			Port:    envOr("APP_PORT", ":8000"),
			BaseURL: os.Getenv("APP_URL"),
		}
	})
	return appConfig
}
