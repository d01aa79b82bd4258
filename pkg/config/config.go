package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration values
type Config struct {
	Port           string
	ResendAPIKey   string
	LeadsToEmail   string
	LeadsFromEmail string
	MinPhoneDigits int
}

// LoadConfig reads configuration from environment variables. The mail values
// may legitimately be empty here; the lead pipeline reports a configuration
// error per request when they are missing.
func LoadConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
		LeadsToEmail:   os.Getenv("LEADS_TO_EMAIL"),
		LeadsFromEmail: os.Getenv("LEADS_FROM_EMAIL"),
		MinPhoneDigits: getEnvAsInt("MIN_PHONE_DIGITS", 10),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
