package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templatelab/routeset/internal/config"
	"github.com/templatelab/routeset/internal/expand"
	"github.com/templatelab/routeset/internal/finetune"
	"github.com/templatelab/routeset/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full dataset pipeline",
	Long: `Run executes every pipeline stage in dependency order:

  expand-prompts    catalog -> prompt dataset
  format-finetune   prompt dataset -> fine-tune conversations

Both output files are rewritten in full.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Log.Level)

		registry, err := buildRegistry(cfg)
		if err != nil {
			return err
		}

		results, err := pipeline.NewRunner(registry, logger).Run(cmd.Context())
		if err != nil {
			return err
		}

		for _, name := range registry.Names() {
			if res, ok := results[name]; ok {
				fmt.Printf("%s: %d records -> %s\n", name, res.Records, res.Output)
			}
		}
		return nil
	},
}

// buildRegistry registers the pipeline stages against the configured paths.
func buildRegistry(cfg *config.Config) (*pipeline.Registry, error) {
	registry := pipeline.NewRegistry()
	stages := []pipeline.Stage{
		&expand.Stage{Catalog: cfg.Datasets.Catalog, Output: cfg.Datasets.Prompts},
		&finetune.Stage{Prompts: cfg.Datasets.Prompts, Output: cfg.Datasets.Finetune},
	}
	for _, s := range stages {
		if err := registry.Register(s); err != nil {
			return nil, err
		}
	}
	if err := registry.Validate(); err != nil {
		return nil, err
	}
	return registry, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
