package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/templatelab/routeset/internal/config"
	"github.com/templatelab/routeset/internal/output"
	"github.com/templatelab/routeset/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "routeset",
	Short: "Training-dataset pipeline for a template-routing assistant",
	Long: `Routeset converts a canonical catalog of UI template metadata into
training datasets for a template-routing assistant.

The pipeline includes:
  - Prompt expansion: format-hinted synthetic prompts labeled with templates
  - Fine-tune formatting: three-turn conversations answering with template ids
  - Dataset delivery: upload of the fine-tune corpus to the OpenAI Files API`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.routeset/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "routeset home directory (default: ~/.routeset)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.SetFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds the config manager and returns the loaded configuration.
func loadConfig() (*config.Config, error) {
	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}
	return cm.Get(), nil
}

// newLogger builds the CLI logger honoring the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
