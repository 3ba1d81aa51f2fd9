package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templatelab/routeset/internal/finetune"
)

var finetuneCmd = &cobra.Command{
	Use:   "finetune",
	Short: "Format the prompt dataset as fine-tune conversations",
	Long: `Finetune wraps each prompt example into a three-turn conversation:
a fixed system instruction, the user prompt, and the expected template id as
the assistant answer.

The fine-tune dataset is rewritten in full on every run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Log.Level)

		stage := &finetune.Stage{
			Prompts: cfg.Datasets.Prompts,
			Output:  cfg.Datasets.Finetune,
		}
		res, err := stage.Run(cmd.Context(), logger)
		if err != nil {
			return err
		}

		fmt.Printf("Wrote fine-tune JSONL to %s\n", res.Output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(finetuneCmd)
}
