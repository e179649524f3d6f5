package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GROQ_API_KEY", "COMPLETION_BASE_URL", "COMPLETION_MODEL",
		"COMPLETION_TEMPERATURE", "COMPLETION_MAX_TOKENS", "CLASSIFIER_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Completion.BaseURL != defaultCompletionBaseURL {
		t.Errorf("BaseURL = %q", cfg.Completion.BaseURL)
	}
	if cfg.Completion.Model != defaultCompletionModel {
		t.Errorf("Model = %q", cfg.Completion.Model)
	}
	if cfg.Completion.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", cfg.Completion.Temperature)
	}
	if cfg.Completion.MaxTokens != 3500 {
		t.Errorf("MaxTokens = %d, want 3500", cfg.Completion.MaxTokens)
	}
	if cfg.Classifier.URL != defaultClassifierURL {
		t.Errorf("Classifier.URL = %q", cfg.Classifier.URL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("COMPLETION_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("COMPLETION_TEMPERATURE", "0.2")
	t.Setenv("COMPLETION_MAX_TOKENS", "1000")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Completion.APIKey != "gsk-test" {
		t.Errorf("APIKey = %q", cfg.Completion.APIKey)
	}
	if cfg.Completion.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Model = %q", cfg.Completion.Model)
	}
	if cfg.Completion.Temperature != 0.2 {
		t.Errorf("Temperature = %v", cfg.Completion.Temperature)
	}
	if cfg.Completion.MaxTokens != 1000 {
		t.Errorf("MaxTokens = %d", cfg.Completion.MaxTokens)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("COMPLETION_TEMPERATURE", "warm")
	t.Setenv("COMPLETION_MAX_TOKENS", "many")

	cfg := Load()

	if cfg.Completion.Temperature != defaultTemperature {
		t.Errorf("Temperature = %v, want default", cfg.Completion.Temperature)
	}
	if cfg.Completion.MaxTokens != defaultMaxTokens {
		t.Errorf("MaxTokens = %d, want default", cfg.Completion.MaxTokens)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}
	cfg.Completion.APIKey = "gsk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
