package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string
	Seed     bool

	// Database configuration
	DatabaseDriver string
	DatabaseURL    string

	// Scoring model configuration
	ModelVersion       string
	ModelPath          string
	RecommendSweepDays bool

	// OpenAI configuration
	OpenAIAPIKey        string
	OpenAIInsightsModel string

	// Telemetry configuration
	OTLPEndpoint string
	OTLPEnv      string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Seed:     getEnv("SEED", "false") == "true",

		DatabaseDriver: getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL:    getEnv("DATABASE_URL", "somnolog.db"),

		ModelVersion:       getEnv("MODEL_VERSION", "v1"),
		ModelPath:          getEnv("MODEL_PATH", "models/sleep_productivity.onnx"),
		RecommendSweepDays: getEnv("RECOMMEND_SWEEP_DAYS", "false") == "true",

		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIInsightsModel: getEnv("OPENAI_INSIGHTS_MODEL", "gpt-4o-mini"),

		OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),
		OTLPEnv:      getEnv("OTLP_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
