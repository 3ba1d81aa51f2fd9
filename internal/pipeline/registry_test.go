package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

// mockStage implements Stage for testing.
type mockStage struct {
	name         string
	dependencies []string
	runs         *[]string // shared run log, appended to on Run
	err          error
}

func newMockStage(name string, deps ...string) *mockStage {
	return &mockStage{name: name, dependencies: deps}
}

func (m *mockStage) Name() string           { return m.name }
func (m *mockStage) Dependencies() []string { return m.dependencies }
func (m *mockStage) Description() string    { return "test stage" }

func (m *mockStage) Run(ctx context.Context, logger *slog.Logger) (*Result, error) {
	if m.runs != nil {
		*m.runs = append(*m.runs, m.name)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &Result{Records: 1, Output: m.name + ".jsonl"}, nil
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	stage := newMockStage("test-stage")
	if err := r.Register(stage); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Duplicate registration should fail
	if err := r.Register(stage); !errors.Is(err, ErrStageAlreadyRegistered) {
		t.Fatalf("expected ErrStageAlreadyRegistered, got %v", err)
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()

	stage := newMockStage("test-stage")
	r.Register(stage)

	got, ok := r.Get("test-stage")
	if !ok {
		t.Fatal("Get returned false for registered stage")
	}
	if got.Name() != "test-stage" {
		t.Errorf("got name %q, want %q", got.Name(), "test-stage")
	}

	_, ok = r.Get("nonexistent")
	if ok {
		t.Fatal("Get returned true for nonexistent stage")
	}
}

func TestRegistry_List(t *testing.T) {
	r := NewRegistry()

	r.Register(newMockStage("stage-a"))
	r.Register(newMockStage("stage-b"))
	r.Register(newMockStage("stage-c"))

	stages := r.List()
	if len(stages) != 3 {
		t.Fatalf("got %d stages, want 3", len(stages))
	}

	// Should maintain registration order
	want := []string{"stage-a", "stage-b", "stage-c"}
	for i := range want {
		if stages[i].Name() != want[i] {
			t.Errorf("order mismatch at %d: got %q, want %q", i, stages[i].Name(), want[i])
		}
	}
}

func TestRegistry_GetOrdered(t *testing.T) {
	t.Run("dependencies come first", func(t *testing.T) {
		r := NewRegistry()

		// Register out of dependency order
		r.Register(newMockStage("format-finetune", "expand-prompts"))
		r.Register(newMockStage("expand-prompts"))

		ordered, err := r.GetOrdered()
		if err != nil {
			t.Fatalf("GetOrdered failed: %v", err)
		}
		if ordered[0].Name() != "expand-prompts" || ordered[1].Name() != "format-finetune" {
			names := []string{ordered[0].Name(), ordered[1].Name()}
			t.Errorf("unexpected order: %v", names)
		}
	})

	t.Run("missing dependency", func(t *testing.T) {
		r := NewRegistry()
		r.Register(newMockStage("format-finetune", "expand-prompts"))

		if _, err := r.GetOrdered(); !errors.Is(err, ErrStageNotFound) {
			t.Fatalf("expected ErrStageNotFound, got %v", err)
		}
	})

	t.Run("dependency cycle", func(t *testing.T) {
		r := NewRegistry()
		r.Register(newMockStage("a", "b"))
		r.Register(newMockStage("b", "a"))

		if _, err := r.GetOrdered(); !errors.Is(err, ErrDependencyCycle) {
			t.Fatalf("expected ErrDependencyCycle, got %v", err)
		}
	})
}

func TestRegistry_Validate(t *testing.T) {
	r := NewRegistry()
	r.Register(newMockStage("expand-prompts"))
	r.Register(newMockStage("format-finetune", "expand-prompts"))

	if err := r.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}
