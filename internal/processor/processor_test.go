package processor

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/polyglot/internal/cli"
	"codeberg.org/snonux/polyglot/internal/history"
	"codeberg.org/snonux/polyglot/internal/testutil"
	"codeberg.org/snonux/polyglot/internal/translation"
)

func newTestProcessor(flags *cli.Flags, provider *testutil.MockProvider) *Processor {
	return &Processor{
		flags:      flags,
		translator: translation.NewTranslator(provider, nil, time.Second),
		history:    history.New(),
	}
}

func TestNewProcessor_GoogleDefault(t *testing.T) {
	proc, err := NewProcessor(cli.NewFlags())
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}
	if proc == nil {
		t.Fatal("NewProcessor returned nil")
	}
	if proc.History().Len() != 0 {
		t.Error("Expected empty history for a new processor")
	}
}

func TestNewProcessor_UnknownProvider(t *testing.T) {
	flags := cli.NewFlags()
	flags.Provider = "babelfish"

	if _, err := NewProcessor(flags); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestNewProcessor_OpenAIWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	flags := cli.NewFlags()
	flags.Provider = "openai"

	if _, err := NewProcessor(flags); err == nil {
		t.Error("Expected startup error for missing OpenAI API key")
	}
}

func TestProviderConfig(t *testing.T) {
	flags := cli.NewFlags()
	flags.Provider = "gemini"
	flags.Timeout = 10 * time.Second
	flags.GeminiModel = "gemini-2.5-pro"

	config := providerConfig(flags)

	if config.Provider != "gemini" {
		t.Errorf("Expected provider 'gemini', got '%s'", config.Provider)
	}
	if config.Timeout != 10*time.Second {
		t.Errorf("Expected timeout 10s, got %v", config.Timeout)
	}
	if config.GeminiModel != "gemini-2.5-pro" {
		t.Errorf("Expected model 'gemini-2.5-pro', got '%s'", config.GeminiModel)
	}
}

func TestTranslateText_EmptyQuery(t *testing.T) {
	provider := &testutil.MockProvider{}
	proc := newTestProcessor(cli.NewFlags(), provider)

	if err := proc.TranslateText(context.Background(), "   \t"); err == nil {
		t.Error("Expected error for whitespace-only input")
	}
	if len(provider.Calls) != 0 {
		t.Error("Provider must not be called for whitespace-only input")
	}
	if proc.History().Len() != 0 {
		t.Error("Expected no history entry for a rejected query")
	}
}

func TestTranslateText_UnsupportedTarget(t *testing.T) {
	flags := cli.NewFlags()
	flags.Target = "xx"
	proc := newTestProcessor(flags, &testutil.MockProvider{})

	if err := proc.TranslateText(context.Background(), "Hello"); err == nil {
		t.Error("Expected error for unsupported target language")
	}
}

func TestTranslateText(t *testing.T) {
	outputDir := t.TempDir()

	flags := cli.NewFlags()
	flags.Target = "fr"
	flags.SaveText = true
	flags.OutputDir = outputDir

	provider := &testutil.MockProvider{
		Responses: map[string]string{testutil.Key("Hello", "fr"): "Bonjour"},
	}
	proc := newTestProcessor(flags, provider)

	if err := proc.TranslateText(context.Background(), "  Hello  "); err != nil {
		t.Fatalf("TranslateText failed: %v", err)
	}

	// History records the trimmed source and the language display name
	if proc.History().Len() != 1 {
		t.Fatalf("Expected 1 history entry, got %d", proc.History().Len())
	}
	entry := proc.History().Entries()[0]
	if entry.SourceText != "Hello" {
		t.Errorf("Expected source 'Hello', got '%s'", entry.SourceText)
	}
	if entry.TargetLang != "French" {
		t.Errorf("Expected target 'French', got '%s'", entry.TargetLang)
	}
	if entry.Translated != "Bonjour" {
		t.Errorf("Expected translation 'Bonjour', got '%s'", entry.Translated)
	}
	if entry.Timestamp.IsZero() {
		t.Error("Expected a timestamp on the history entry")
	}

	// The translation was saved to a timestamped .txt file
	saved := findFile(t, outputDir, "translation_")
	content, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("Failed to read saved translation: %v", err)
	}
	if string(content) != "Bonjour\n" {
		t.Errorf("Expected saved content 'Bonjour\\n', got '%s'", string(content))
	}
	if !strings.HasSuffix(saved, "_fr.txt") {
		t.Errorf("Expected filename to end in '_fr.txt', got '%s'", saved)
	}
}

func TestTranslateText_ProviderFailure(t *testing.T) {
	provider := &testutil.MockProvider{
		Errors: map[string]error{testutil.Key("Hello", "fr"): errors.New("provider down")},
	}
	proc := newTestProcessor(cli.NewFlags(), provider)

	err := proc.TranslateText(context.Background(), "Hello")
	if err == nil {
		t.Fatal("Expected translation failure")
	}
	if !strings.Contains(err.Error(), "translation failed") {
		t.Errorf("Unexpected error: %v", err)
	}
	if proc.History().Len() != 0 {
		t.Error("Expected no history entry for a failed translation")
	}
}

func TestProcessBatch(t *testing.T) {
	outputDir := t.TempDir()
	batchFile := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(batchFile, []byte("Hello\nWorld\n\n"), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}

	flags := cli.NewFlags()
	flags.Target = "es"
	flags.BatchFile = batchFile
	flags.OutputDir = outputDir

	provider := &testutil.MockProvider{
		Responses: map[string]string{
			testutil.Key("Hello", "es"): "Hola",
			testutil.Key("World", "es"): "Mundo",
		},
	}
	proc := newTestProcessor(flags, provider)

	if err := proc.ProcessBatch(context.Background()); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	reportFile := findFile(t, outputDir, "translations_")
	if !strings.HasSuffix(reportFile, "_es.csv") {
		t.Errorf("Expected report name to end in '_es.csv', got '%s'", reportFile)
	}

	f, err := os.Open(reportFile)
	if err != nil {
		t.Fatalf("Failed to open report: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse report: %v", err)
	}

	want := [][]string{
		{"original_en", "translated", "target_lang"},
		{"Hello", "Hola", "es"},
		{"World", "Mundo", "es"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("Expected %v, got %v", want, records)
	}
}

func TestProcessBatch_PartialFailure(t *testing.T) {
	outputDir := t.TempDir()
	batchFile := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(batchFile, []byte("One\nTwo\nThree"), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}

	flags := cli.NewFlags()
	flags.BatchFile = batchFile
	flags.OutputDir = outputDir

	provider := &testutil.MockProvider{
		Responses: map[string]string{
			testutil.Key("One", "fr"):   "Un",
			testutil.Key("Three", "fr"): "Trois",
		},
		Errors: map[string]error{
			testutil.Key("Two", "fr"): errors.New("provider down"),
		},
	}
	proc := newTestProcessor(flags, provider)

	if err := proc.ProcessBatch(context.Background()); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	f, err := os.Open(findFile(t, outputDir, "translations_"))
	if err != nil {
		t.Fatalf("Failed to open report: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse report: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("Expected header plus 3 rows, got %d records", len(records))
	}
	if !strings.HasPrefix(records[2][1], "[ERROR: ") {
		t.Errorf("Expected error marker for the failed row, got '%s'", records[2][1])
	}
}

func TestProcessBatch_NoUsableLines(t *testing.T) {
	outputDir := t.TempDir()
	batchFile := filepath.Join(t.TempDir(), "blank.txt")
	if err := os.WriteFile(batchFile, []byte("\n   \n"), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}

	flags := cli.NewFlags()
	flags.BatchFile = batchFile
	flags.OutputDir = outputDir

	proc := newTestProcessor(flags, &testutil.MockProvider{})

	// Empty input is a notice, not a hard error, and produces no report
	if err := proc.ProcessBatch(context.Background()); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no report for empty input, found %d files", len(entries))
	}
}

func TestProcessBatch_UnsupportedExtension(t *testing.T) {
	flags := cli.NewFlags()
	flags.BatchFile = "words.pdf"

	proc := newTestProcessor(flags, &testutil.MockProvider{})

	if err := proc.ProcessBatch(context.Background()); err == nil {
		t.Error("Expected error for unsupported file type")
	}
}

func TestProcessBatch_MissingFile(t *testing.T) {
	flags := cli.NewFlags()
	flags.BatchFile = filepath.Join(t.TempDir(), "missing.txt")

	proc := newTestProcessor(flags, &testutil.MockProvider{})

	if err := proc.ProcessBatch(context.Background()); err == nil {
		t.Error("Expected error for missing batch file")
	}
}

func findFile(t *testing.T, dir, prefix string) string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read directory: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), prefix) {
			return filepath.Join(dir, entry.Name())
		}
	}
	t.Fatalf("No file with prefix '%s' in %s", prefix, dir)
	return ""
}
