package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/polyglot/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "polyglot [text]",
		Short: "English to French, Spanish and German translator",
		Long: `polyglot translates English text into French, Spanish or German
using an external translation provider.

It translates a single text given on the command line, or a whole .txt or
.csv file in batch mode, writing a CSV report that pairs each original line
with its translation.

Examples:
  polyglot "Good morning"                   # Translate to French (default)
  polyglot -t es "Good morning"             # Translate to Spanish
  polyglot --batch lines.txt -t de          # Batch translate a text file
  polyglot --batch rows.csv -t fr -o out/   # Batch translate a CSV file`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.polyglot.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Target, "target", "t", flags.Target, "Target language code (fr, es or de)")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory for reports and saved translations")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Batch translate a .txt (one line per entry) or .csv (text column or first column) file")
	cmd.Flags().BoolVar(&flags.SaveText, "save", false, "Save a single translation to a timestamped .txt file")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	// Provider flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: google, openai or gemini")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Per-call timeout for the translation provider")

	// Cache flags
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Disable the translation cache")
	cmd.Flags().DurationVar(&flags.CacheTTL, "cache-ttl", flags.CacheTTL, "How long cached translations stay valid")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for translation")

	// Gemini flags
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for translation")

	// Bind flags to viper
	bindFlagsToViper(cmd.Flags())
}

func bindFlagsToViper(fs *pflag.FlagSet) {
	viper.BindPFlag("translation.provider", fs.Lookup("provider"))
	viper.BindPFlag("translation.target", fs.Lookup("target"))
	viper.BindPFlag("translation.timeout", fs.Lookup("timeout"))
	viper.BindPFlag("cache.ttl", fs.Lookup("cache-ttl"))
	viper.BindPFlag("cache.disabled", fs.Lookup("no-cache"))
	viper.BindPFlag("output.directory", fs.Lookup("output"))
	viper.BindPFlag("openai.model", fs.Lookup("openai-model"))
	viper.BindPFlag("gemini.model", fs.Lookup("gemini-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".polyglot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".polyglot")
	}

	// Environment variables
	viper.SetEnvPrefix("POLYGLOT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	// First check environment variable
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("gemini.api_key")
}
