// Package home resolves the routeset home directory layout.
package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the routeset home directory.
	DefaultDirName = ".routeset"

	// DatasetsDirName is the subdirectory holding catalog and derived datasets.
	DatasetsDirName = "datasets"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Default dataset file names within the datasets directory.
const (
	CatalogFileName  = "metadata_canonical_db.jsonl"
	PromptsFileName  = "metadata_prompt_dataset.jsonl"
	FinetuneFileName = "metadata_finetune_dataset.jsonl"
)

// Dir represents the routeset home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.routeset).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// DatasetsPath returns the path to the datasets directory.
func (d *Dir) DatasetsPath() string {
	return filepath.Join(d.path, DatasetsDirName)
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// CatalogPath returns the default canonical catalog location.
func (d *Dir) CatalogPath() string {
	return filepath.Join(d.DatasetsPath(), CatalogFileName)
}

// PromptsPath returns the default prompt dataset location.
func (d *Dir) PromptsPath() string {
	return filepath.Join(d.DatasetsPath(), PromptsFileName)
}

// FinetunePath returns the default fine-tune dataset location.
func (d *Dir) FinetunePath() string {
	return filepath.Join(d.DatasetsPath(), FinetuneFileName)
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	// Create datasets directory (this also creates the parent)
	if err := os.MkdirAll(d.DatasetsPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create datasets directory: %w", err)
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
