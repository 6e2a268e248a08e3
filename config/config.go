package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file when one is present. Real deployments set the
// variables directly, so a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
}

func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// MustGetEnv aborts startup when a required variable is missing.
func MustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("❌ %s not set in environment variables", key)
	}
	return value
}

const defaultAuthProviderURL = "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"

func MongoURI() string   { return MustGetEnv("MONGO_URI") }
func DBName() string     { return MustGetEnv("DB_NAME") }
func Port() string       { return GetEnv("PORT", "8080") }
func CORSOrigin() string { return GetEnv("CORS_ORIGIN", "*") }

// AuthProviderURL is the identity endpoint session ids are exchanged against.
func AuthProviderURL() string {
	return GetEnv("AUTH_PROVIDER_URL", defaultAuthProviderURL)
}
