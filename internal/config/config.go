// Package config provides configuration management for the application.
package config

import (
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Database drivers understood by database.Open.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration values for the application.
type Config struct {
	// AWS
	AWSRegion    string
	ExportBucket string
	ExportPrefix string

	// Database
	DBDriver   string
	DBURL      string
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	SQLitePath string

	// Application
	Stage    string
	LogLevel string
	Port     string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		// AWS
		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		ExportBucket: getEnv("EXPORT_BUCKET", ""),
		ExportPrefix: getEnv("EXPORT_PREFIX", "exports/"),

		// Database
		DBDriver:   getEnv("DB_DRIVER", DriverPostgres),
		DBURL:      getEnv("DATABASE_URL", ""),
		DBHost:     getEnv("DATABASE_ENDPOINT", getEnv("DB_HOST", "localhost")),
		DBPort:     getEnvInt("DATABASE_PORT", getEnvInt("DB_PORT", 5432)),
		DBName:     getEnv("DATABASE_NAME", getEnv("DB_NAME", "things")),
		DBUser:     getEnv("DATABASE_USER", getEnv("DB_USER", "postgres")),
		DBPassword: getEnv("DATABASE_PASSWORD", getEnv("DB_PASSWORD", "")),
		SQLitePath: getEnv("SQLITE_PATH", "things.db"),

		// Application
		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnv("PORT", "8080"),
	}

	return cfg, nil
}

// DatabaseURL returns the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	sslMode := "require" // Use SSL for RDS
	if c.DBHost == "localhost" || c.DBHost == "127.0.0.1" {
		sslMode = "disable" // Disable SSL for local development
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
