// Package store persists the business document as a single JSON file.
//
// Concurrency model: all mutations are serialized behind one mutex via
// Update, so concurrent API writers queue instead of racing last-write-
// wins on the file. Reads re-parse the file on every call; the file is
// the only source of truth between requests.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"bizsuite/internal/document"
)

type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the current document. If no file exists yet it persists
// the built-in default document first. If the file exists but does not
// parse, the default document is served and the corrupt file is left
// untouched so its contents stay recoverable; the API never sees the
// parse error.
func (s *Store) Load() (*document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// Save overwrites the persisted document in full, creating the data
// directory if needed.
func (s *Store) Save(doc *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(doc)
}

// Update loads the document, applies fn to it, and persists the result.
// The whole read-modify-write cycle holds the store mutex. If fn returns
// an error nothing is written.
func (s *Store) Update(fn func(*document.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}

	return s.save(doc)
}

func (s *Store) load() (*document.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := document.Default()
		if err := s.save(doc); err != nil {
			return nil, err
		}

		return doc, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	doc, err := document.Decode(data)
	if err != nil {
		// Corruption branch: serve defaults, keep the broken file on
		// disk for manual recovery.
		slog.Warn("data file is corrupt, serving default document", "path", s.path, "error", err)

		return document.Default(), nil
	}

	return doc, nil
}

func (s *Store) save(doc *document.Document) error {
	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing data file: %w", err)
	}

	return nil
}
