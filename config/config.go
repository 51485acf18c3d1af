package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server configuration (stub backend)
	Port        string
	Environment string
	JWTSecret   string

	// API client configuration
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Redis configuration (optional; empty URL disables Redis)
	RedisURL      string
	RedisPassword string
	RedisDB       int
	TokenKey      string

	// Monitoring
	EnableMetrics bool
	MetricsPort   string
}

func LoadConfig() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "8090"),
		Environment: getEnv("ENVIRONMENT", "development"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),

		// Client
		APIBaseURL:  getEnv("API_BASE_URL", "https://testv2.b-tickets-app.com/api"),
		HTTPTimeout: getEnvAsDuration("HTTP_TIMEOUT", "10s"),

		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		TokenKey:      getEnv("TOKEN_KEY", "b_ticket_token"),

		// Monitoring
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	// If parsing fails, fall back to the default value
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
