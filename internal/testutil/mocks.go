package testutil

import (
	"context"
	"fmt"
)

// MockProvider is a scripted translation provider for tests. Responses and
// Errors are keyed by "text|targetCode"; every call is recorded in Calls.
type MockProvider struct {
	Responses map[string]string
	Errors    map[string]error
	Calls     []string
}

// Key builds the lookup key used by Responses and Errors
func Key(text, targetCode string) string {
	return fmt.Sprintf("%s|%s", text, targetCode)
}

// Translate returns the scripted response or error for the given pair
func (m *MockProvider) Translate(ctx context.Context, text string, targetCode string) (string, error) {
	key := Key(text, targetCode)
	m.Calls = append(m.Calls, key)

	if err, ok := m.Errors[key]; ok {
		return "", err
	}
	if resp, ok := m.Responses[key]; ok {
		return resp, nil
	}
	return "", fmt.Errorf("no mock response for %s", key)
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	return "mock"
}

// IsAvailable always reports the mock as available
func (m *MockProvider) IsAvailable() error {
	return nil
}

// CallCount returns how many calls were made for the given pair
func (m *MockProvider) CallCount(text, targetCode string) int {
	count := 0
	for _, call := range m.Calls {
		if call == Key(text, targetCode) {
			count++
		}
	}
	return count
}
