package main

import (
	"github.com/spf13/cobra"

	"github.com/templatelab/routeset/internal/output"
	"github.com/templatelab/routeset/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the catalog and derived datasets",
	Long: `Stats reports template counts, per-format counts, how many templates
would be skipped for lack of phrases, and record counts of whichever derived
datasets exist on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		summary, err := stats.Collect(
			cfg.Datasets.Catalog,
			cfg.Datasets.Prompts,
			cfg.Datasets.Finetune,
		)
		if err != nil {
			return err
		}

		return output.Print(summary)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
