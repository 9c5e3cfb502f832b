package results

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store is a file-based YAML persister for a directory's worth of pairwise
// comparison records, the sole disk format the CLI's compare/list/matches
// subcommands share.
type Store struct {
	path string
}

// NewStore opens a Store backed by a single YAML file at path, creating its
// parent directory if necessary.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	return &Store{path: path}, nil
}

// SaveAll overwrites the store's file with the given records.
func (s *Store) SaveAll(records []Record) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Load reads every record back from the store's file.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", s.path, err)
	}
	return records, nil
}
