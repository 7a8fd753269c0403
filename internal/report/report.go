// Package report serializes batch translation results into the CSV report
// offered for download, with the fixed header original_en, translated,
// target_lang.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"codeberg.org/snonux/polyglot/internal/batch"
)

// Report is an ordered collection of batch translation results
type Report struct {
	results []batch.Result
}

// New creates a report over the given results, preserving their order
func New(results []batch.Result) *Report {
	return &Report{results: results}
}

// Results returns the underlying results in order
func (r *Report) Results() []batch.Result {
	return r.results
}

// CSV serializes the report as UTF-8 CSV bytes. Serializing the same report
// twice yields byte-identical output.
func (r *Report) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"original_en", "translated", "target_lang"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, res := range r.results {
		record := []string{res.Original, res.Translated, res.TargetLang}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}
	return buf.Bytes(), nil
}

// Stats returns total, succeeded and failed row counts
func (r *Report) Stats() (total, ok, failed int) {
	total = len(r.results)
	for _, res := range r.results {
		if res.OK {
			ok++
		} else {
			failed++
		}
	}
	return total, ok, failed
}

// Filename returns the suggested report file name,
// translations_<timestamp>_<targetCode>.csv.
func Filename(now time.Time, targetCode string) string {
	return fmt.Sprintf("translations_%s_%s.csv", now.Format("20060102_150405"), targetCode)
}

// TextFilename returns the suggested file name for a saved single
// translation, translation_<timestamp>_<targetCode>.txt.
func TextFilename(now time.Time, targetCode string) string {
	return fmt.Sprintf("translation_%s_%s.txt", now.Format("20060102_150405"), targetCode)
}
