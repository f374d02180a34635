package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kevinmichaelchen/gh-profile/internal/github"
)

type Config struct {
	GitHubToken  string
	GitHubAPIURL string

	LogLevel string
	LogFile  string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		GitHubAPIURL: getEnvOrDefault("GITHUB_API_URL", github.DefaultBaseURL),

		LogLevel: getEnvOrDefault("LOG_LEVEL", "warn"),
		LogFile:  os.Getenv("LOG_FILE"),

		LLMBaseURL: getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:  os.Getenv("LLM_API_KEY"),
		LLMModel:   getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
	}

	cfg.GitHubAPIURL = strings.TrimSuffix(cfg.GitHubAPIURL, "/")

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
