package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	// Type selects the middleware variant guarding protected routes:
	// "session" (cookie) or "basic" (Authorization header).
	Type              string
	SessionCookieName string
	BcryptCost        int
	// ExcludedPaths lists paths reachable without authentication.
	ExcludedPaths []string
}

const defaultExcludedPaths = "/,/health,/ready,/api/v1/users,/api/v1/sessions,/api/v1/profile,/api/v1/reset_password"

func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "auth"),
			Password: getEnv("DB_PASSWORD", "auth"),
			DBName:   getEnv("DB_NAME", "authdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			Type:              getEnv("AUTH_TYPE", "session"),
			SessionCookieName: getEnv("SESSION_COOKIE_NAME", "session_id"),
			BcryptCost:        getIntEnv("AUTH_BCRYPT_COST", 12),
			ExcludedPaths:     splitPaths(getEnv("AUTH_EXCLUDED_PATHS", defaultExcludedPaths)),
		},
	}

	if cfg.Auth.Type != "session" && cfg.Auth.Type != "basic" {
		return nil, fmt.Errorf("unknown AUTH_TYPE %q", cfg.Auth.Type)
	}

	return cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func splitPaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
