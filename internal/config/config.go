// Package config provides configuration for the assistant service.
package config

import (
	"os"
	"strconv"
)

// Config holds the assistant configuration.
type Config struct {
	// Server settings
	Port int

	// Inference backend
	OllamaURL    string
	OllamaModel  string
	OllamaAPIKey string

	// Collaborators
	WasteServiceURL string

	// Conversation memory
	MaxHistory int

	// Optional backends
	RedisAddr    string
	TranscriptDB string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:            getEnvInt("PORT", 8083),
		OllamaURL:       getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:     getEnv("OLLAMA_MODEL", "gpt-oss:120b-cloud"),
		OllamaAPIKey:    getEnv("OLLAMA_API_KEY", ""),
		WasteServiceURL: getEnv("WASTE_SERVICE_URL", "http://localhost:8081"),
		MaxHistory:      getEnvInt("MAX_HISTORY", 10),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		TranscriptDB:    getEnv("TRANSCRIPT_DB", "file:carbobot.db?cache=shared&mode=rwc"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
