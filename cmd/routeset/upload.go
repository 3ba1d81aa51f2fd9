package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/templatelab/routeset/internal/upload"
)

var uploadFile string

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload the fine-tune dataset to the OpenAI Files API",
	Long: `Upload pushes the fine-tune JSONL to the OpenAI Files API with
purpose "fine-tune" and prints the server-assigned file ID.

Creating or monitoring fine-tune jobs is out of scope; the file ID is handed
to whatever runs the training.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		apiKey := cfg.ResolveAPIKey()
		if apiKey == "" {
			return fmt.Errorf("no OpenAI API key configured (set OPENAI_API_KEY or openai.api_key)")
		}

		path := uploadFile
		if path == "" {
			path = cfg.Datasets.Finetune
		}

		client := upload.New(upload.Config{
			APIKey:     apiKey,
			MaxRetries: cfg.OpenAI.MaxRetries,
			Timeout:    time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second,
		})

		fileID, err := client.File(cmd.Context(), path)
		if err != nil {
			return err
		}

		fmt.Printf("Uploaded %s (file id: %s)\n", path, fileID)
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadFile, "file", "", "dataset file to upload (default: configured fine-tune dataset)")

	rootCmd.AddCommand(uploadCmd)
}
