package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("with explicit path", func(t *testing.T) {
		dir, err := New("/tmp/test-routeset")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir.Path() != "/tmp/test-routeset" {
			t.Errorf("expected path /tmp/test-routeset, got %s", dir.Path())
		}
	})

	t.Run("with empty path uses default", func(t *testing.T) {
		dir, err := New("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, DefaultDirName)
		if dir.Path() != expected {
			t.Errorf("expected path %s, got %s", expected, dir.Path())
		}
	})
}

func TestDir_Paths(t *testing.T) {
	dir, _ := New("/tmp/test-routeset")

	t.Run("DatasetsPath", func(t *testing.T) {
		expected := "/tmp/test-routeset/datasets"
		if dir.DatasetsPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.DatasetsPath())
		}
	})

	t.Run("ConfigPath", func(t *testing.T) {
		expected := "/tmp/test-routeset/config.yaml"
		if dir.ConfigPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.ConfigPath())
		}
	})

	t.Run("dataset file paths", func(t *testing.T) {
		if got := dir.CatalogPath(); got != "/tmp/test-routeset/datasets/metadata_canonical_db.jsonl" {
			t.Errorf("unexpected catalog path %s", got)
		}
		if got := dir.PromptsPath(); got != "/tmp/test-routeset/datasets/metadata_prompt_dataset.jsonl" {
			t.Errorf("unexpected prompts path %s", got)
		}
		if got := dir.FinetunePath(); got != "/tmp/test-routeset/datasets/metadata_finetune_dataset.jsonl" {
			t.Errorf("unexpected finetune path %s", got)
		}
	})
}

func TestDir_EnsureExists(t *testing.T) {
	base := t.TempDir()
	dir, _ := New(filepath.Join(base, "routeset-home"))

	if dir.Exists() {
		t.Fatal("directory should not exist yet")
	}

	if err := dir.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}

	if !dir.Exists() {
		t.Error("directory should exist")
	}
	if _, err := os.Stat(dir.DatasetsPath()); err != nil {
		t.Errorf("datasets directory missing: %v", err)
	}
	if dir.ConfigExists() {
		t.Error("config should not exist")
	}
}
