package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SchemaModeMigrate = "migrate"
	SchemaModeNone    = "none"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
	DBSSLMode  string
	SchemaMode string
	LogLevel   string
}

// Load reads the configuration once at process start. A .env file is
// optional, system environment variables win either way.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	return &Config{
		Port:       getEnv("PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "expense_tracker"),
		DBUsername: getEnv("DB_USERNAME", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		SchemaMode: getEnv("SCHEMA_MODE", SchemaModeMigrate),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if port, err := strconv.Atoi(c.DBPort); err != nil {
		errors = append(errors, fmt.Sprintf("invalid db port '%s': must be a number", c.DBPort))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid db port %d: must be between 1 and 65535", port))
	}

	if c.SchemaMode != SchemaModeMigrate && c.SchemaMode != SchemaModeNone {
		errors = append(errors, fmt.Sprintf("invalid schema mode '%s': must be '%s' or '%s'", c.SchemaMode, SchemaModeMigrate, SchemaModeNone))
	}

	if c.DBName == "" {
		errors = append(errors, "db name must not be empty")
	}
	if c.DBUsername == "" {
		errors = append(errors, "db username must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// ConnectionString assembles the postgres URL for the stdlib pgx driver.
func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUsername, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
