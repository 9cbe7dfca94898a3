// Package customer implements the customer collection operations. The
// running totals on a customer are only ever advanced by sale
// transactions, never through these endpoints.
package customer

import (
	"encoding/json"
	"errors"
	"fmt"

	"bizsuite/internal/document"
)

var ErrNotFound = errors.New("customer not found")

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

func (s *Service) List() ([]document.Customer, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	return doc.Customers, nil
}

func (s *Service) Create(c document.Customer) (document.Customer, error) {
	err := s.store.Update(func(d *document.Document) error {
		c.ID = d.NextCustomerID()
		d.Customers = append(d.Customers, c)

		return nil
	})
	if err != nil {
		return document.Customer{}, err
	}

	return c, nil
}

// Update merges the patch over the stored record key by key.
func (s *Service) Update(id int, patch json.RawMessage) (document.Customer, error) {
	if !json.Valid(patch) {
		return document.Customer{}, fmt.Errorf("parsing update: invalid JSON")
	}

	var updated document.Customer

	err := s.store.Update(func(d *document.Document) error {
		for i := range d.Customers {
			if d.Customers[i].ID != id {
				continue
			}

			merged := d.Customers[i]
			if err := document.Merge(&merged, patch); err != nil {
				return fmt.Errorf("applying update: %w", err)
			}

			merged.ID = id
			d.Customers[i] = merged
			updated = merged

			return nil
		}

		return ErrNotFound
	})
	if err != nil {
		return document.Customer{}, err
	}

	return updated, nil
}

// Delete removes the customer with the given id. A missing id is not an
// error.
func (s *Service) Delete(id int) error {
	return s.store.Update(func(d *document.Document) error {
		kept := d.Customers[:0]

		for _, c := range d.Customers {
			if c.ID != id {
				kept = append(kept, c)
			}
		}

		d.Customers = kept

		return nil
	})
}
