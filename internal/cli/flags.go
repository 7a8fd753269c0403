package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	BatchFile  string
	Target     string
	OutputDir  string
	SaveText   bool
	ListModels bool

	// Provider flags
	Provider string
	Timeout  time.Duration

	// Cache flags
	NoCache  bool
	CacheTTL time.Duration

	// OpenAI flags
	OpenAIModel string

	// Gemini flags
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Target:      "fr",
		OutputDir:   ".",
		Provider:    "google",
		Timeout:     30 * time.Second,
		CacheTTL:    time.Hour,
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}
