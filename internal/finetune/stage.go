package finetune

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/templatelab/routeset/internal/dataset"
	"github.com/templatelab/routeset/internal/expand"
	"github.com/templatelab/routeset/internal/jsonl"
	"github.com/templatelab/routeset/internal/pipeline"
)

// StageName identifies this stage in the pipeline registry.
const StageName = "format-finetune"

// Stage reads the prompt dataset and writes the fine-tune conversations.
type Stage struct {
	Prompts string // prompt dataset path (input)
	Output  string // fine-tune dataset path (output, truncated)
}

func (s *Stage) Name() string           { return StageName }
func (s *Stage) Dependencies() []string { return []string{expand.StageName} }

func (s *Stage) Description() string {
	return "Wrap prompt examples into three-turn fine-tune conversations"
}

// Run emits exactly one conversation per prompt example, in input order.
func (s *Stage) Run(ctx context.Context, logger *slog.Logger) (*pipeline.Result, error) {
	log := logger
	if log == nil {
		log = slog.Default()
	}
	log.Debug("formatting fine-tune dataset", "source", s.Prompts, "dest", s.Output)

	w, err := jsonl.Create(s.Output)
	if err != nil {
		return nil, err
	}

	err = jsonl.ForEach(s.Prompts, func(line int, raw []byte) error {
		var ex dataset.PromptExample
		if err := json.Unmarshal(raw, &ex); err != nil {
			return fmt.Errorf("%s:%d: %w", s.Prompts, line, err)
		}
		return w.Write(Wrap(ex))
	})
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return &pipeline.Result{Records: w.Count(), Output: s.Output}, nil
}
