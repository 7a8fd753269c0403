// Package extract converts uploaded file bytes into an ordered sequence of
// candidate lines for batch translation. Plain text files contribute one
// candidate per line; CSV files contribute the "text" column when the header
// names one, and the first column otherwise.
package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format identifies how uploaded bytes should be interpreted.
type Format string

const (
	FormatTXT Format = "txt"
	FormatCSV Format = "csv"
)

// FormatFromFilename derives the input format from the file extension.
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return FormatTXT, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported file type '%s' (expected .txt or .csv)", filepath.Ext(name))
	}
}

// Candidates extracts candidate lines from raw file bytes. Candidates are
// trimmed but may be empty; emptiness filtering happens downstream so that
// callers can report how many lines were parsed in total. Order is
// preserved. A malformed CSV fails the whole extraction, never partially.
func Candidates(data []byte, format Format) ([]string, error) {
	switch format {
	case FormatTXT:
		return textCandidates(data), nil
	case FormatCSV:
		return csvCandidates(data)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func textCandidates(data []byte) []string {
	text := decode(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	// A trailing newline is a line terminator, not an extra empty line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

func csvCandidates(data []byte) ([]string, error) {
	r := csv.NewReader(strings.NewReader(decode(data)))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	// Use the "text" column when the header names one (any case),
	// otherwise fall back to the first column. The header row itself is
	// never a candidate.
	column := 0
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "text") {
			column = i
			break
		}
	}

	var candidates []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse file: %w", err)
		}
		value := ""
		if column < len(record) {
			value = record[column]
		}
		candidates = append(candidates, strings.TrimSpace(value))
	}
	return candidates, nil
}

// decode interprets bytes as UTF-8, replacing invalid sequences instead of
// failing, and drops a leading BOM.
func decode(data []byte) string {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	return strings.ToValidUTF8(string(data), "�")
}
