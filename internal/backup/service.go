// Package backup produces full-document snapshots and restores uploaded
// ones, normalizing on the way in so a tampered or hand-edited backup
// cannot put the store into an unusable state.
package backup

import (
	"fmt"
	"time"

	"bizsuite/internal/document"
)

type Store interface {
	Load() (*document.Document, error)
	Save(doc *document.Document) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Snapshot returns the current document serialized for download, plus a
// timestamped filename.
func (s *Service) Snapshot() (data []byte, filename string, err error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, "", fmt.Errorf("loading document: %w", err)
	}

	data, err = document.Normalize(doc).Encode()
	if err != nil {
		return nil, "", fmt.Errorf("encoding backup: %w", err)
	}

	filename = "business_backup_" + time.Now().Format("20060102_150405") + ".json"

	return data, filename, nil
}

// Restore replaces the persisted document with the uploaded one after
// normalization. A parse error is returned to the caller; nothing is
// written in that case.
func (s *Service) Restore(data []byte) error {
	doc, err := document.Decode(data)
	if err != nil {
		return fmt.Errorf("parsing backup: %w", err)
	}

	if err := s.store.Save(doc); err != nil {
		return fmt.Errorf("saving restored document: %w", err)
	}

	return nil
}
