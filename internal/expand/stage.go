package expand

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/templatelab/routeset/internal/catalog"
	"github.com/templatelab/routeset/internal/jsonl"
	"github.com/templatelab/routeset/internal/pipeline"
)

// StageName identifies this stage in the pipeline registry.
const StageName = "expand-prompts"

// Stage reads the template catalog and writes the prompt dataset.
type Stage struct {
	Catalog string // canonical catalog path (input)
	Output  string // prompt dataset path (output, truncated)
}

func (s *Stage) Name() string           { return StageName }
func (s *Stage) Dependencies() []string { return nil }

func (s *Stage) Description() string {
	return "Expand template metadata into format-hinted routing prompts"
}

// Run streams the catalog and writes one PromptExample per derived prompt.
// Any decode or write failure aborts the whole run; output record order
// follows catalog order, and prompt order follows phrase order.
func (s *Stage) Run(ctx context.Context, logger *slog.Logger) (*pipeline.Result, error) {
	log := logger
	if log == nil {
		log = slog.Default()
	}
	log.Debug("expanding catalog", "source", s.Catalog, "dest", s.Output)

	w, err := jsonl.Create(s.Output)
	if err != nil {
		return nil, err
	}

	templates := 0
	err = jsonl.ForEach(s.Catalog, func(line int, raw []byte) error {
		var tpl catalog.Template
		if err := json.Unmarshal(raw, &tpl); err != nil {
			return fmt.Errorf("%s:%d: %w", s.Catalog, line, err)
		}
		examples := FromTemplate(tpl)
		if len(examples) == 0 {
			// No phrases at all: the record is skippable, not an error.
			return nil
		}
		if err := tpl.CheckRequired(); err != nil {
			return fmt.Errorf("%s:%d: %w", s.Catalog, line, err)
		}
		templates++
		for _, ex := range examples {
			if err := w.Write(ex); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	log.Debug("catalog expanded", "templates", templates, "examples", w.Count())
	return &pipeline.Result{Records: w.Count(), Output: s.Output}, nil
}
