package translation

import (
	"context"
	"fmt"
	"time"
)

// Provider defines the interface for translation providers
type Provider interface {
	// Translate translates English text into the target language
	Translate(ctx context.Context, text string, targetCode string) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for translation providers
type Config struct {
	Provider string        // Provider name: "google", "openai" or "gemini"
	Timeout  time.Duration // Per-call timeout

	// Google web endpoint settings
	GoogleEndpoint string

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // Chat model, e.g. "gpt-4o-mini"

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string // e.g. "gemini-2.0-flash"
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:       "google",
		Timeout:        30 * time.Second,
		GoogleEndpoint: defaultGoogleEndpoint,
		OpenAIModel:    "gpt-4o-mini",
		GeminiModel:    "gemini-2.0-flash",
	}
}

// NewProvider creates the appropriate translation provider based on
// configuration. Missing credentials are a configuration error here,
// never a mid-batch code path.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "google":
		return NewGoogleProvider(config)

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(config)

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}

// translatePrompt builds the instruction sent to LLM-backed providers.
func translatePrompt(lang Language, text string) string {
	return fmt.Sprintf("Translate the following English text to %s. "+
		"Respond with only the %s translation, nothing else.\n\n%s",
		lang.Name, lang.Name, text)
}
