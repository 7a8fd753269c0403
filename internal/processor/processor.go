package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/polyglot/internal/batch"
	"codeberg.org/snonux/polyglot/internal/cli"
	"codeberg.org/snonux/polyglot/internal/extract"
	"codeberg.org/snonux/polyglot/internal/history"
	"codeberg.org/snonux/polyglot/internal/report"
	"codeberg.org/snonux/polyglot/internal/translation"
)

// Processor handles the main translation logic
type Processor struct {
	flags      *cli.Flags
	translator *translation.Translator
	history    *history.History
}

// NewProcessor creates a new processor. Provider construction fails here,
// at startup, when credentials for the selected provider are missing.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	config := providerConfig(flags)

	provider, err := translation.NewProvider(config)
	if err != nil {
		return nil, err
	}
	if err := provider.IsAvailable(); err != nil {
		return nil, err
	}

	var cache *translation.TTLCache
	if !flags.NoCache && !viper.GetBool("cache.disabled") {
		cache = translation.NewTTLCache(flags.CacheTTL)
	}

	translator := translation.NewTranslator(
		translation.NewBreakerProvider(provider), cache, config.Timeout)

	return &Processor{
		flags:      flags,
		translator: translator,
		history:    history.New(),
	}, nil
}

// providerConfig builds the provider configuration from flags, falling back
// to config file values where a flag is still at its default.
func providerConfig(flags *cli.Flags) *translation.Config {
	config := translation.DefaultProviderConfig()
	config.Provider = flags.Provider
	config.Timeout = flags.Timeout
	config.OpenAIKey = cli.GetOpenAIKey()
	config.OpenAIModel = flags.OpenAIModel
	config.GeminiKey = cli.GetGeminiKey()
	config.GeminiModel = flags.GeminiModel

	// Use config file values if not overridden by flags
	if flags.Provider == "google" && viper.IsSet("translation.provider") {
		config.Provider = viper.GetString("translation.provider")
	}
	if flags.Timeout == 30*time.Second && viper.IsSet("translation.timeout") {
		config.Timeout = viper.GetDuration("translation.timeout")
	}
	if flags.OpenAIModel == "gpt-4o-mini" && viper.IsSet("openai.model") {
		config.OpenAIModel = viper.GetString("openai.model")
	}
	if flags.GeminiModel == "gemini-2.0-flash" && viper.IsSet("gemini.model") {
		config.GeminiModel = viper.GetString("gemini.model")
	}

	return config
}

// TranslateText translates a single English text, prints the result,
// appends it to the session history and optionally saves it to a
// timestamped .txt file. Whitespace-only input is rejected before any
// provider call.
func (p *Processor) TranslateText(ctx context.Context, text string) error {
	lang, err := translation.LanguageByCode(p.flags.Target)
	if err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("please enter some English text to translate")
	}

	fmt.Printf("Translating to %s...\n", lang.Name)

	translated, err := p.translator.Translate(ctx, text, lang.Code)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	fmt.Printf("\n%s\n", translated)

	p.history.Append(history.Entry{
		SourceText: strings.TrimSpace(text),
		TargetLang: lang.Name,
		Translated: translated,
		Timestamp:  time.Now(),
	})

	if p.flags.SaveText {
		if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		outputFile := filepath.Join(p.flags.OutputDir, report.TextFilename(time.Now(), lang.Code))
		if err := os.WriteFile(outputFile, []byte(translated+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write translation file: %w", err)
		}
		fmt.Printf("\nSaved to: %s\n", outputFile)
	}

	return nil
}

// ProcessBatch translates every line of the batch file and writes the CSV
// report into the output directory.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	lang, err := translation.LanguageByCode(p.flags.Target)
	if err != nil {
		return err
	}

	format, err := extract.FormatFromFilename(p.flags.BatchFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(p.flags.BatchFile)
	if err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}

	driver := batch.NewDriver(p.translator)
	results, parsed, err := driver.Run(ctx, data, format, lang.Code)
	if errors.Is(err, batch.ErrNoUsableLines) {
		fmt.Printf("No usable lines found in %s\n", p.flags.BatchFile)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Parsed %d lines.\n", parsed)

	rep := report.New(results)
	csvBytes, err := rep.CSV()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	outputFile := filepath.Join(p.flags.OutputDir, report.Filename(time.Now(), lang.Code))
	if err := os.WriteFile(outputFile, csvBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	// Print summary
	total, ok, failed := rep.Stats()
	fmt.Printf("\n=== Batch Translation Summary ===\n")
	fmt.Printf("Total lines: %d\n", total)
	fmt.Printf("Translated: %d\n", ok)
	if failed > 0 {
		fmt.Printf("Failed: %d\n", failed)
	}
	fmt.Printf("Report: %s\n", outputFile)
	fmt.Printf("=================================\n")

	return nil
}

// History returns the session history of single translations
func (p *Processor) History() *history.History {
	return p.history
}
