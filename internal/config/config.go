package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	AppBaseURL     string
	DatabaseType   string // sqlite (default), postgres or mysql
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string

	SessionDuration time.Duration
	SessionSecret   string

	// Educator portal
	PortalPasswordHash string // bcrypt hash; empty disables the portal
	PortalJWTSecret    string
	PortalTokenTTL     time.Duration

	// Contact form email (Amazon SES)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	ContactEmail string

	// Google sign-in
	GoogleClientID     string
	GoogleClientSecret string

	// Achievement sound cache
	AudioDir string

	Debug bool
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	return &Config{
		ServerPort:         getEnv("PORT", "8080"),
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		DatabaseType:       getEnv("DB_TYPE", "sqlite"),
		DatabasePath:       getEnv("DB_PATH", "./ecolearn.db"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "./migrations"),
		SessionDuration:    getEnvDuration("SESSION_DURATION", 24*time.Hour),
		SessionSecret:      getEnv("SESSION_SECRET", "ecolearn-dev-secret"),
		PortalPasswordHash: getEnv("PORTAL_PASSWORD_HASH", ""),
		PortalJWTSecret:    getEnv("PORTAL_JWT_SECRET", ""),
		PortalTokenTTL:     getEnvDuration("PORTAL_TOKEN_TTL", 8*time.Hour),
		AWSRegion:          getEnv("AWS_REGION", "ap-south-1"),
		SESFromEmail:       getEnv("SES_FROM_EMAIL", ""),
		SESFromName:        getEnv("SES_FROM_NAME", "EcoLearn"),
		ContactEmail:       getEnv("CONTACT_EMAIL", ""),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		AudioDir:           getEnv("AUDIO_DIR", "./audio"),
		Debug:              getEnvBool("DEBUG", false),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration reads a duration environment variable (e.g. "12h")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration for %s: %q, using default", key, value)
		return defaultValue
	}
	return d
}

// getEnvBool reads a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
