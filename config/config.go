package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// JWT Configuration
	JWTSecret     string
	TokenTTLHours int
	// Redis Configuration (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitLoginThreshold  int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored when absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		FrontendURL:   strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 24),
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Tokens cannot be issued or verified.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
