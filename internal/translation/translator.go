package translation

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrEmptyQuery is returned when a translation request contains only
// whitespace. It is rejected before any external call is made.
var ErrEmptyQuery = errors.New("no English text to translate")

// Translator translates English text using a Provider, consulting a TTL
// cache before each external call. A nil cache disables caching.
type Translator struct {
	provider Provider
	cache    *TTLCache
	timeout  time.Duration
}

// NewTranslator creates a new translator instance
func NewTranslator(provider Provider, cache *TTLCache, timeout time.Duration) *Translator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Translator{
		provider: provider,
		cache:    cache,
		timeout:  timeout,
	}
}

// Translate translates trimmed English text into the target language.
// Identical (text, target) pairs within the cache window invoke the
// provider at most once.
func (t *Translator) Translate(ctx context.Context, text string, targetCode string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyQuery
	}
	if _, err := LanguageByCode(targetCode); err != nil {
		return "", err
	}

	if t.cache != nil {
		if translated, ok := t.cache.Get(text, targetCode); ok {
			return translated, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	translated, err := t.provider.Translate(ctx, text, targetCode)
	if err != nil {
		return "", err
	}

	if t.cache != nil {
		t.cache.Put(text, targetCode, translated)
	}
	return translated, nil
}

// Provider returns the underlying provider
func (t *Translator) Provider() Provider {
	return t.provider
}
