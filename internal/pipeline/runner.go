package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Runner executes registered stages in dependency order.
type Runner struct {
	registry *Registry
	logger   *slog.Logger
}

// NewRunner creates a runner over the given registry.
func NewRunner(registry *Registry, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{registry: registry, logger: logger}
}

// Run executes every registered stage in dependency order, stopping at the
// first failure. Results for stages that completed are returned either way.
func (r *Runner) Run(ctx context.Context) (map[string]*Result, error) {
	stages, err := r.registry.GetOrdered()
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	log := r.logger.With("run_id", runID)

	results := make(map[string]*Result, len(stages))
	started := time.Now()

	for _, stage := range stages {
		log.Info("stage starting", "stage", stage.Name())
		res, err := stage.Run(ctx, log)
		if err != nil {
			return results, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
		results[stage.Name()] = res
		log.Info("stage complete",
			"stage", stage.Name(),
			"records", res.Records,
			"output", res.Output,
		)
	}

	log.Info("pipeline complete",
		"stages", len(stages),
		"elapsed", time.Since(started).Round(time.Millisecond),
	)
	return results, nil
}
