// Package pipeline coordinates the dataset-generation stages.
package pipeline

import (
	"context"
	"log/slog"
)

// Stage is one full-file batch transform in the dataset pipeline.
// Stages are the core abstraction - each reads one record stream and writes
// the next.
type Stage interface {
	// Name identifies the stage, e.g. "expand-prompts".
	Name() string

	// Dependencies lists stages that must complete first.
	Dependencies() []string

	// Description is a one-line summary for CLI listings.
	Description() string

	// Run executes the transform. The logger may be nil, in which case the
	// stage falls back to slog.Default().
	Run(ctx context.Context, logger *slog.Logger) (*Result, error)
}

// Result reports what a completed stage produced.
type Result struct {
	Records int    `json:"records" yaml:"records"`
	Output  string `json:"output" yaml:"output"`
}
