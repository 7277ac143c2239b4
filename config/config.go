package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	DBMaxOpenConns int
	DBMaxIdleConns int

	UploadDir string // local media storage root
	BaseURL   string // public base URL for served uploads

	PerplexityApiKey string
	PerplexityApiUrl string

	StatsSyncCron string // cron spec for the enrollment stats job
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "skillforge.db"),
		DBPort:     getEnv("DB_PORT", "5432"),

		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		BaseURL:   getEnv("BASE_URL", "http://localhost:"+getEnv("PORT", "8080")),

		PerplexityApiKey: getEnv("PERPLEXITY_API_KEY", ""),
		PerplexityApiUrl: getEnv("PERPLEXITY_API_URL", "https://api.perplexity.ai/v1/generate"),

		StatsSyncCron: getEnv("STATS_SYNC_CRON", "@every 10m"),
	}

	if AppConfig.PerplexityApiKey == "" {
		log.Println("Warning: PERPLEXITY_API_KEY not set. Quiz generation will use the mock generator.")
	}
	if AppConfig.DBDriver == "sqlite" {
		log.Printf("Using sqlite database %s. Set DB_DRIVER=postgres for production.", AppConfig.DBName)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
