package config

import (
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Security
	JWTSecret string

	// Server
	Port           string
	TrustedProxies []string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Info("Loaded configuration from .env file")
	}

	cfg := &Config{
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_NAME", "travelrisk"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		Port:       getEnv("PORT", "8080"),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
		log.Warn("JWT_SECRET is not set, using an insecure development secret")
	}

	if trustedProxies := os.Getenv("TRUSTED_PROXIES"); trustedProxies != "" {
		cfg.TrustedProxies = strings.Split(trustedProxies, ",")
		for i, proxy := range cfg.TrustedProxies {
			cfg.TrustedProxies[i] = strings.TrimSpace(proxy)
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
