package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultCompletionBaseURL = "https://api.groq.com/openai/v1"
	defaultCompletionModel   = "deepseek-r1-distill-llama-70b"
	defaultTemperature       = 0.7
	defaultMaxTokens         = 3500
	defaultClassifierURL     = "https://hasanah10105-breast-cancer-classification.hf.space/--replicas/12gx2/"
)

type Config struct {
	Port       string
	Completion CompletionConfig
	Classifier ClassifierConfig
}

type CompletionConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

type ClassifierConfig struct {
	URL string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),
		Completion: CompletionConfig{
			APIKey:      getEnv("GROQ_API_KEY", ""),
			BaseURL:     getEnv("COMPLETION_BASE_URL", defaultCompletionBaseURL),
			Model:       getEnv("COMPLETION_MODEL", defaultCompletionModel),
			Temperature: getEnvAsFloat("COMPLETION_TEMPERATURE", defaultTemperature),
			MaxTokens:   getEnvAsInt("COMPLETION_MAX_TOKENS", defaultMaxTokens),
		},
		Classifier: ClassifierConfig{
			URL: getEnv("CLASSIFIER_URL", defaultClassifierURL),
		},
	}
}

// Validate reports startup-time configuration problems. A missing completion
// key is not fatal: AI-backed features answer with an error message while the
// rest of the application keeps working.
func (c *Config) Validate() error {
	if c.Completion.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is not set; AI-backed features will be unavailable")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}
