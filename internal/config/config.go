package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DSN       string
	JWTSecret string
	AppPort   string

	GeminiAPIKey string
	GeminiModel  string

	// ShortlistRPS caps outbound model calls per second across a request.
	ShortlistRPS float64
	// ShortlistWorkers bounds how many resumes are processed in parallel.
	ShortlistWorkers int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := Config{
		DSN:              os.Getenv("POSTGRES_DSN"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AppPort:          os.Getenv("APP_PORT"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      os.Getenv("GEMINI_MODEL"),
		ShortlistRPS:     envFloat("SHORTLIST_RPS", 1),
		ShortlistWorkers: envInt("SHORTLIST_WORKERS", 2),
	}

	if cfg.DSN == "" {
		log.Fatal("❌ POSTGRES_DSN not set in environment")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-only"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.5-flash"
	}
	if cfg.GeminiAPIKey == "" {
		// Not fatal: the shortlisting pipeline degrades to placeholder
		// analyses when no model is reachable.
		log.Println("⚠️ GEMINI_API_KEY not set, AI analysis will run degraded")
	}

	return cfg
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
