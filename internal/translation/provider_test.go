package translation

import (
	"strings"
	"testing"
)

func TestNewProvider_Defaults(t *testing.T) {
	provider, err := NewProvider(nil)
	if err != nil {
		t.Fatalf("NewProvider(nil) failed: %v", err)
	}
	if provider.Name() != "google" {
		t.Errorf("Expected default provider 'google', got '%s'", provider.Name())
	}
	if err := provider.IsAvailable(); err != nil {
		t.Errorf("Expected google provider to be available, got: %v", err)
	}
}

func TestNewProvider_OpenAIRequiresKey(t *testing.T) {
	config := DefaultProviderConfig()
	config.Provider = "openai"

	_, err := NewProvider(config)
	if err == nil {
		t.Error("Expected error for missing OpenAI API key")
	}
}

func TestNewProvider_GeminiRequiresKey(t *testing.T) {
	config := DefaultProviderConfig()
	config.Provider = "gemini"

	_, err := NewProvider(config)
	if err == nil {
		t.Error("Expected error for missing Gemini API key")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	config := DefaultProviderConfig()
	config.Provider = "babelfish"

	_, err := NewProvider(config)
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "unknown translation provider") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestNewProvider_OpenAI(t *testing.T) {
	config := DefaultProviderConfig()
	config.Provider = "openai"
	config.OpenAIKey = "test-api-key"

	provider, err := NewProvider(config)
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if provider.Name() != "openai" {
		t.Errorf("Expected provider 'openai', got '%s'", provider.Name())
	}
	if err := provider.IsAvailable(); err != nil {
		t.Errorf("Expected provider to be available, got: %v", err)
	}
}

func TestTranslatePrompt(t *testing.T) {
	lang, err := LanguageByCode("de")
	if err != nil {
		t.Fatalf("LanguageByCode failed: %v", err)
	}

	prompt := translatePrompt(lang, "Good morning")
	if !strings.Contains(prompt, "German") {
		t.Errorf("Expected prompt to name the target language, got: %s", prompt)
	}
	if !strings.Contains(prompt, "Good morning") {
		t.Errorf("Expected prompt to contain the source text, got: %s", prompt)
	}
}
