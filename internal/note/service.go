// Package note implements the notes collection. Notes are keyed by a
// generated token rather than a sequential id, and created_at is set
// once while updated_at refreshes on every update.
package note

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bizsuite/internal/document"
)

var (
	ErrNotFound      = errors.New("note not found")
	ErrTitleRequired = errors.New("note title is required")
)

type Store interface {
	Load() (*document.Document, error)
	Update(fn func(*document.Document) error) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List() ([]document.Note, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	return doc.Notes, nil
}

func (s *Service) Create(n document.Note) (document.Note, error) {
	if n.Title == "" {
		return document.Note{}, ErrTitleRequired
	}

	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().Format(document.ISOFormat)
	n.UpdatedAt = n.CreatedAt

	err := s.store.Update(func(d *document.Document) error {
		d.Notes = append(d.Notes, n)
		return nil
	})
	if err != nil {
		return document.Note{}, err
	}

	return n, nil
}

// Update merges the patch over the stored note and refreshes updated_at.
// The id and created_at of the stored note are immutable.
func (s *Service) Update(id string, patch json.RawMessage) (document.Note, error) {
	if !json.Valid(patch) {
		return document.Note{}, fmt.Errorf("parsing update: invalid JSON")
	}

	var updated document.Note

	err := s.store.Update(func(d *document.Document) error {
		for i := range d.Notes {
			if d.Notes[i].ID != id {
				continue
			}

			merged := d.Notes[i]
			if err := document.Merge(&merged, patch); err != nil {
				return fmt.Errorf("applying update: %w", err)
			}

			merged.ID = id
			merged.CreatedAt = d.Notes[i].CreatedAt
			merged.UpdatedAt = time.Now().Format(document.ISOFormat)

			d.Notes[i] = merged
			updated = merged

			return nil
		}

		return ErrNotFound
	})
	if err != nil {
		return document.Note{}, err
	}

	return updated, nil
}

// Delete removes the note with the given id. A missing id is not an
// error.
func (s *Service) Delete(id string) error {
	return s.store.Update(func(d *document.Document) error {
		kept := d.Notes[:0]

		for _, n := range d.Notes {
			if n.ID != id {
				kept = append(kept, n)
			}
		}

		d.Notes = kept

		return nil
	})
}
