package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string
	Environment string

	// Database
	DBDriver string // "postgres" or "sqlite"
	DBDSN    string

	// Sessions
	JWTSecret  string
	SessionTTL time.Duration

	// Uploads
	UploadDir string

	// SMTP — application notifications
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// Load reads .env (if present) and builds the Config from the environment.
func Load() *Config {
	// Missing .env is fine in production; everything comes from real env vars.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		DBDSN:       getEnv("DB_DSN", "host=localhost user=postgres password=password dbname=jobportal port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-only-secret"),
		SessionTTL:  getDuration("SESSION_TTL", 24*time.Hour),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getInt("SMTP_PORT", 587),
		SMTPUser:    getEnv("SMTP_USER", ""),
		SMTPPass:    getEnv("SMTP_PASS", ""),
		MailFrom:    getEnv("MAIL_FROM", "noreply@jobportal.local"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
