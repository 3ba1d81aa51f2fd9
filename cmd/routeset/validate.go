package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templatelab/routeset/internal/catalog"
	"github.com/templatelab/routeset/internal/jsonl"
	"github.com/templatelab/routeset/internal/output"
)

// violation is one schema failure in the catalog.
type violation struct {
	Line  int    `json:"line" yaml:"line"`
	Error string `json:"error" yaml:"error"`
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check catalog records against the metadata schema",
	Long: `Validate checks every catalog line against the TemplateMetadataRecord
JSON schema (required template_id and template_name, typed optional fields)
and reports each violating line.

Unknown supported_formats values are legal input; they simply contribute no
format hints during expansion.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var violations []violation
		err = jsonl.ForEach(cfg.Datasets.Catalog, func(line int, raw []byte) error {
			if err := catalog.ValidateLine(raw); err != nil {
				violations = append(violations, violation{Line: line, Error: err.Error()})
			}
			return nil
		})
		if err != nil {
			return err
		}

		if len(violations) == 0 {
			fmt.Printf("Catalog %s is valid\n", cfg.Datasets.Catalog)
			return nil
		}

		if err := output.Print(violations); err != nil {
			return err
		}
		return fmt.Errorf("catalog has %d invalid records", len(violations))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
