package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT           string
	DB_URL         string
	SESSION_SECRET string
	LOG_LEVEL      string
	CORS_ORIGIN    string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	SESSION_SECRET = mustEnv("SESSION_SECRET")
	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
