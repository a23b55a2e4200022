package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var loaded bool

// Config returns the value of an env variable, loading .env once on first use.
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using system environment")
		}
		loaded = true
	}
	return os.Getenv(key)
}

// ConfigOr returns the env value or a fallback when unset.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
