package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string
	AllowedOrigins []string

	// Optional Redis leaderboard cache; disabled when RedisAddr is empty
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./mathgames.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
	}
}

// parseOrigins splits a comma-separated origin list, trimming whitespace
// and any trailing slash from each entry
func parseOrigins(raw string) []string {
	if raw == "" {
		return []string{"http://localhost:5173", "http://localhost:3000"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		origin := strings.TrimSuffix(strings.TrimSpace(p), "/")
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
