package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultGoogleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleProvider implements Provider against the free Google web translate
// endpoint. It needs no API key.
type GoogleProvider struct {
	endpoint string
	http     *resty.Client
}

// NewGoogleProvider creates a new Google web endpoint provider
func NewGoogleProvider(config *Config) (Provider, error) {
	endpoint := config.GoogleEndpoint
	if endpoint == "" {
		endpoint = defaultGoogleEndpoint
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GoogleProvider{
		endpoint: endpoint,
		http:     resty.New().SetTimeout(timeout),
	}, nil
}

// Translate translates English text using the Google web endpoint
func (p *GoogleProvider) Translate(ctx context.Context, text string, targetCode string) (string, error) {
	if _, err := LanguageByCode(targetCode); err != nil {
		return "", err
	}

	resp, err := p.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "en",
			"tl":     targetCode,
			"dt":     "t",
			"q":      text,
		}).
		Get(p.endpoint)
	if err != nil {
		return "", fmt.Errorf("google translate request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("google translate: %s", resp.Status())
	}

	return parseGoogleResponse(resp.Body())
}

// parseGoogleResponse extracts the translated text from the endpoint's
// nested-array payload, e.g. [[["Bonjour","Hello",...],...],...].
func parseGoogleResponse(body []byte) (string, error) {
	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	sentences, ok := raw[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected translation response shape")
	}

	var sb strings.Builder
	for _, s := range sentences {
		chunk, ok := s.([]any)
		if !ok || len(chunk) == 0 {
			continue
		}
		if part, ok := chunk[0].(string); ok {
			sb.WriteString(part)
		}
	}

	translated := strings.TrimSpace(sb.String())
	if translated == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translated, nil
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// IsAvailable checks if the provider is properly configured
func (p *GoogleProvider) IsAvailable() error {
	// The web endpoint requires no credentials.
	return nil
}
