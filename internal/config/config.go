package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Flat store
	DataFile            string
	StoreTimeoutSeconds int

	// JWT
	JWTSecret string

	// SMTP
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Email workers
	EmailWorkers   int
	EmailQueueSize int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                getEnvOrDefault("PORT", "8080"),
		Env:                 getEnvOrDefault("ENV", "development"),
		DataFile:            getEnvOrDefault("DATA_FILE", "./data/quizzy.json"),
		StoreTimeoutSeconds: getEnvAsIntOrDefault("STORE_TIMEOUT_SECONDS", 5),
		JWTSecret:           getEnvOrDefault("JWT_SECRET", "quizzy-dev-secret"),
		SMTPHost:            getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort:            getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUser:            getEnvOrDefault("SMTP_USER", ""),
		SMTPPass:            getEnvOrDefault("SMTP_PASS", ""),
		SMTPFrom:            getEnvOrDefault("SMTP_FROM", "noreply@quizzy.app"),
		EmailWorkers:        getEnvAsIntOrDefault("EMAIL_WORKERS", 2),
		EmailQueueSize:      getEnvAsIntOrDefault("EMAIL_QUEUE_SIZE", 64),
		FrontendURL:         getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
