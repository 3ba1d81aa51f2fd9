package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templatelab/routeset/internal/expand"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Expand the template catalog into labeled routing prompts",
	Long: `Expand reads the canonical template catalog and derives up to four
format-hinted prompts per template, each labeled with the template it should
route to.

Templates without user phrases or keywords contribute no prompts. The prompt
dataset is rewritten in full on every run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Log.Level)

		stage := &expand.Stage{
			Catalog: cfg.Datasets.Catalog,
			Output:  cfg.Datasets.Prompts,
		}
		res, err := stage.Run(cmd.Context(), logger)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %d prompt examples to %s\n", res.Records, res.Output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
}
