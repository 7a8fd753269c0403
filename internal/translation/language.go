package translation

import (
	"fmt"
	"strings"
)

// Language is a supported translation target.
type Language struct {
	Code string // ISO 639-1 code sent to the provider
	Name string // Human-readable name used in prompts and output
}

// Languages lists the supported target languages. The source language is
// always English.
var Languages = []Language{
	{Code: "fr", Name: "French"},
	{Code: "es", Name: "Spanish"},
	{Code: "de", Name: "German"},
}

// LanguageByCode looks up a supported target language by its code.
func LanguageByCode(code string) (Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, lang := range Languages {
		if lang.Code == code {
			return lang, nil
		}
	}
	return Language{}, fmt.Errorf("unsupported target language '%s' (supported: %s)",
		code, strings.Join(LanguageCodes(), ", "))
}

// LanguageCodes returns the supported target language codes.
func LanguageCodes() []string {
	codes := make([]string, 0, len(Languages))
	for _, lang := range Languages {
		codes = append(codes, lang.Code)
	}
	return codes
}
