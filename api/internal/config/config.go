package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	GeminiAPIKey string
	GeminiModel  string

	// Optional: enables the solve cache when set.
	DatabaseURL string

	// Bot-only settings; cmd/bot validates them.
	TelegramToken string
	WebhookURL    string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	// .env is a local-development convenience; absent in deployment.
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8900"),
		Env:  getEnv("ENV", "dev"),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		WebhookURL:    os.Getenv("WEBHOOK_URL"),
	}
}
