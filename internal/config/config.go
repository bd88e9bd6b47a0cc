package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendLinear = "linear"
	BackendOpenAI = "openai"

	Clock12h = "12h"
	Clock24h = "24h"
)

type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	Seed        bool

	// Regression model configuration
	ModelBackend   string
	ModelPath      string
	ModelCacheSize int
	ClockStyle     string

	// ModelRetryInterval is how long a failed model load is kept before the next estimate tries again.
	ModelRetryInterval time.Duration

	// OpenAI configuration
	OpenAIAPIKey       string
	OpenAIBedtimeModel string

	// Langfuse configuration
	LangfuseBaseURL     string
	LangfusePublicKey   string
	LangfuseSecretKey   string
	LangfuseEnv         string
	LangfusePromptName  string
	LangfusePromptLabel string
	PromptCachePath     string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Seed:        getEnv("SEED", "false") == "true",

		ModelBackend:   getEnv("MODEL_BACKEND", BackendLinear),
		ModelPath:      getEnv("MODEL_PATH", ""),
		ModelCacheSize: getEnvInt("MODEL_CACHE_SIZE", 1024),
		ClockStyle:     getEnv("CLOCK_STYLE", Clock12h),

		ModelRetryInterval: getEnvDuration("MODEL_RETRY_INTERVAL", 30*time.Second),

		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIBedtimeModel: getEnv("OPENAI_BEDTIME_MODEL", "gpt-4o-mini"),

		LangfuseBaseURL:     getEnv("LANGFUSE_BASE_URL", ""),
		LangfusePublicKey:   getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey:   getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseEnv:         getEnv("LANGFUSE_ENV", "development"),
		LangfusePromptName:  getEnv("LANGFUSE_PROMPT_NAME", ""),
		LangfusePromptLabel: getEnv("LANGFUSE_PROMPT_LABEL", "production"),
		PromptCachePath:     getEnv("PROMPT_CACHE_PATH", ""),
	}
}

// Validate reports settings that would leave the estimator unusable.
func (c *Config) Validate() error {
	if c.ModelBackend != BackendLinear && c.ModelBackend != BackendOpenAI {
		return errors.New("MODEL_BACKEND must be one of: linear, openai")
	}
	if c.ClockStyle != Clock12h && c.ClockStyle != Clock24h {
		return errors.New("CLOCK_STYLE must be one of: 12h, 24h")
	}
	if c.ModelCacheSize < 0 {
		return errors.New("MODEL_CACHE_SIZE must not be negative")
	}
	if c.ModelRetryInterval < 0 {
		return errors.New("MODEL_RETRY_INTERVAL must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
