// Package stats summarizes a catalog and its derived datasets.
package stats

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/templatelab/routeset/internal/catalog"
	"github.com/templatelab/routeset/internal/jsonl"
)

// Summary describes the catalog and whichever derived datasets exist on disk.
type Summary struct {
	Templates        int            `json:"templates" yaml:"templates"`
	SkippedNoPhrases int            `json:"skipped_no_phrases" yaml:"skipped_no_phrases"`
	FormatCounts     map[string]int `json:"format_counts" yaml:"format_counts"`
	PromptExamples   *int           `json:"prompt_examples,omitempty" yaml:"prompt_examples,omitempty"`
	Conversations    *int           `json:"conversations,omitempty" yaml:"conversations,omitempty"`
}

// Collect reads the catalog and counts derived dataset records. Derived
// files that do not exist yet are simply omitted from the summary; a
// malformed catalog is an error.
func Collect(catalogPath, promptsPath, finetunePath string) (*Summary, error) {
	s := &Summary{
		FormatCounts: make(map[string]int),
	}

	err := jsonl.ForEach(catalogPath, func(line int, raw []byte) error {
		var tpl catalog.Template
		if err := json.Unmarshal(raw, &tpl); err != nil {
			return fmt.Errorf("%s:%d: %w", catalogPath, line, err)
		}
		s.Templates++
		if len(tpl.Phrases()) == 0 {
			s.SkippedNoPhrases++
		}
		for _, f := range tpl.Formats() {
			s.FormatCounts[string(f)]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if n, ok, err := countIfExists(promptsPath); err != nil {
		return nil, err
	} else if ok {
		s.PromptExamples = &n
	}
	if n, ok, err := countIfExists(finetunePath); err != nil {
		return nil, err
	} else if ok {
		s.Conversations = &n
	}

	return s, nil
}

func countIfExists(path string) (int, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	n, err := jsonl.CountLines(path)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
