package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
// In Go, we use structs to group related data
type Config struct {
	// Server configuration
	Port string

	// Rate limiting
	RateLimitType   string // "memory" or "redis"
	RateLimit       int    // number of requests allowed
	RateLimitWindow int    // time window in seconds (default: 1)

	// Country information provider (REST Countries)
	CountriesAPIURL     string // base URL of the provider
	CountriesAPITimeout int    // request timeout in seconds

	// Favorites store configuration
	StoreType    string // "file", "mysql", or "redis"
	FavoritesDir string // root directory of the file-backed favorites tree

	// Blacklist and search tracking files
	BlacklistPath string // JSON array of restricted country names
	SearchLogPath string // append-only search log (JSON array)
	RankingPath   string // ranking aggregate (JSON object)

	// MySQL configuration
	MySQLDSN string // Data Source Name

	// Redis configuration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from environment variables
// with sensible defaults
// This is a function that returns a pointer to Config
func Load() *Config {
	// Load .env file if it exists (for local development)
	// In production/Docker, environment variables are set directly
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		// Server config with defaults
		Port: getEnv("PORT", "3000"),

		// Rate limiting (default: memory, 10 requests per 1 second)
		RateLimitType:   getEnv("RATE_LIMITER_TYPE", "memory"),
		RateLimit:       getEnvAsInt("RATE_LIMIT", 10),
		RateLimitWindow: getEnvAsInt("RATE_LIMIT_WINDOW", 1), // default 1 second window

		// Country provider config
		CountriesAPIURL:     getEnv("COUNTRIES_API_URL", "https://restcountries.com"),
		CountriesAPITimeout: getEnvAsInt("COUNTRIES_API_TIMEOUT", 10),

		// Favorites store config
		StoreType:    getEnv("STORE_TYPE", "file"),
		FavoritesDir: getEnv("FAVORITES_DIR", "./data/favoritos"),

		// Policy and tracking files
		BlacklistPath: getEnv("BLACKLIST_PATH", "./data/lista_negra.json"),
		SearchLogPath: getEnv("SEARCH_LOG_PATH", "./data/busquedas.json"),
		RankingPath:   getEnv("RANKING_PATH", "./data/ranking.json"),

		// MySQL config
		MySQLDSN: getEnv("MYSQL_DSN", ""),

		// Redis config
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
	}
}

// getEnv reads an environment variable or returns a default value
// This is a helper function (lowercase = private to this package)
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt reads an environment variable as an integer
// Returns default if not set or invalid
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	// Try to convert string to integer
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// If conversion fails, return default
		return defaultValue
	}

	return value
}
