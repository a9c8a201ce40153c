package config

import (
	"os"
	"strconv"
)

// MongoConfig holds document store connection settings.
// URI, when set, wins over the individual host/port/credential fields.
type MongoConfig struct {
	URI               string
	Host              string
	Port              string
	User              string
	Password          string
	AuthSource        string
	Database          string
	Collection        string
	ConnectTimeoutSec int
	MaxPoolSize       int
	Direct            bool
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	Log     LogConfig
	Mongo   MongoConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Mongo: MongoConfig{
			URI:               getEnv("MONGO_URI", ""),
			Host:              getEnv("MONGO_HOST", "localhost"),
			Port:              getEnv("MONGO_PORT", "27017"),
			User:              getEnv("MONGO_USER", ""),
			Password:          getEnv("MONGO_PASSWORD", ""),
			AuthSource:        getEnv("MONGO_AUTH_SOURCE", ""),
			Database:          getEnv("MONGO_DATABASE", "BooksDB"),
			Collection:        getEnv("MONGO_COLLECTION", "books"),
			ConnectTimeoutSec: getEnvInt("MONGO_CONNECT_TIMEOUT_SEC", 10),
			MaxPoolSize:       getEnvInt("MONGO_MAX_POOL_SIZE", 100),
			Direct:            getEnvBool("MONGO_DIRECT_CONNECTION", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
