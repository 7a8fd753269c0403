// Package batch drives whole-file translation runs: candidate extraction,
// per-item translation with isolated error capture, and ordered result
// accumulation. One item's failure never blocks the items after it.
package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/snonux/polyglot/internal/extract"
)

// ErrNoUsableLines is returned when the input yields zero non-empty
// candidates after trimming. It is a notice, not a batch failure.
var ErrNoUsableLines = errors.New("no usable lines found in the uploaded file")

// Result is the outcome of translating one candidate line.
type Result struct {
	Original   string
	Translated string // Translated text, or an "[ERROR: ...]" marker
	TargetLang string
	OK         bool
}

// Translator is the per-item translation capability the driver invokes.
type Translator interface {
	Translate(ctx context.Context, text string, targetCode string) (string, error)
}

// Driver orchestrates extraction, per-item translation and result assembly
type Driver struct {
	translator Translator
}

// NewDriver creates a new batch driver
func NewDriver(translator Translator) *Driver {
	return &Driver{translator: translator}
}

// Run extracts candidates from raw file bytes and translates every
// non-empty one in order. It returns one Result per surviving candidate,
// in input order, plus the total number of candidates parsed. Per-item
// provider failures are recorded inline and never abort the batch; only a
// parse failure does.
func (d *Driver) Run(ctx context.Context, data []byte, format extract.Format, targetCode string) ([]Result, int, error) {
	candidates, err := extract.Candidates(data, format)
	if err != nil {
		return nil, 0, err
	}

	var results []Result
	for _, line := range candidates {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		translated, err := d.translator.Translate(ctx, line, targetCode)
		if err != nil {
			results = append(results, Result{
				Original:   line,
				Translated: fmt.Sprintf("[ERROR: %v]", err),
				TargetLang: targetCode,
			})
			continue
		}

		results = append(results, Result{
			Original:   line,
			Translated: translated,
			TargetLang: targetCode,
			OK:         true,
		})
	}

	if len(results) == 0 {
		return nil, len(candidates), ErrNoUsableLines
	}
	return results, len(candidates), nil
}
