package translation

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerProvider wraps a Provider with a circuit breaker. Once the upstream
// fails repeatedly, further calls fail immediately until the cooldown passes,
// so one dead provider cannot stall a whole batch.
type BreakerProvider struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps the given provider with a circuit breaker
func NewBreakerProvider(provider Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        provider.Name(),
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &BreakerProvider{
		provider: provider,
		breaker:  gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate translates through the wrapped provider, subject to the breaker
func (b *BreakerProvider) Translate(ctx context.Context, text string, targetCode string) (string, error) {
	result, err := b.breaker.Execute(func() (any, error) {
		return b.provider.Translate(ctx, text, targetCode)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the wrapped provider name
func (b *BreakerProvider) Name() string {
	return b.provider.Name()
}

// IsAvailable checks the wrapped provider
func (b *BreakerProvider) IsAvailable() error {
	return b.provider.IsAvailable()
}
