// Package jsonfile implements the store backend over a single JSON file
// holding one array of records.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"innkeep/pkg/logger"
	"innkeep/pkg/store"
)

type Store struct {
	path string
	log  *logger.Logger
}

func New(path string, log *logger.Logger) *Store {
	return &Store{
		path: path,
		log:  log,
	}
}

// Load reads the full record array. A missing file is an empty collection.
// Malformed JSON or a non-array document fails the whole load; an array
// element that is not an object is dropped individually with a warning.
func (s *Store) Load(ctx context.Context) ([]store.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", s.path, err)
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", s.path, err)
	}

	records := make([]store.Record, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			s.log.Warn("Dropping non-object item",
				"file", s.path,
			)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// Save replaces the file content with the given records, creating parent
// directories as needed.
func (s *Store) Save(ctx context.Context, records []store.Record) error {
	if records == nil {
		records = []store.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode records for %s: %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("could not create data directory for %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", s.path, err)
	}
	return nil
}
