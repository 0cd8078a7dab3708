package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads the .env file, falling back to process env vars.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using existing environment: %v", err)
	}
}

// GetEnv returns an environment variable.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault returns an environment variable or a fallback value.
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
