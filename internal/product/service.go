// Package product implements the product collection operations: create
// with id assignment and derived stock status, shallow-merge update,
// and delete-as-no-op.
package product

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bizsuite/internal/document"
)

var ErrNotFound = errors.New("product not found")

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

func (s *Service) List() ([]document.Product, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	return doc.Products, nil
}

// Create stores a new product. The caller provides a default-filled
// record (decoding does that); Create assigns the id, stamps
// last_updated, derives the stock status, and generates an SKU when none
// was supplied.
func (s *Service) Create(p document.Product) (document.Product, error) {
	if p.SKU == "" {
		p.SKU = "PROD-" + time.Now().Format("20060102150405")
	}

	p.LastUpdated = time.Now().Format(document.ISOFormat)
	p.StockStatus = document.StockStatusFor(p.Stock, p.MinStock)

	err := s.store.Update(func(d *document.Document) error {
		p.ID = d.NextProductID()
		d.Products = append(d.Products, p)

		return nil
	})
	if err != nil {
		return document.Product{}, err
	}

	return p, nil
}

// Update merges the patch over the stored record key by key. When the
// patch touches stock, the stock status is recomputed against the
// incoming min_stock if the patch carries one, else the stored one.
func (s *Service) Update(id int, patch json.RawMessage) (document.Product, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(patch, &keys); err != nil {
		return document.Product{}, fmt.Errorf("parsing update: %w", err)
	}

	var updated document.Product

	err := s.store.Update(func(d *document.Document) error {
		for i := range d.Products {
			if d.Products[i].ID != id {
				continue
			}

			merged := d.Products[i]
			if err := document.Merge(&merged, patch); err != nil {
				return fmt.Errorf("applying update: %w", err)
			}

			merged.ID = id
			merged.LastUpdated = time.Now().Format(document.ISOFormat)

			if _, ok := keys["stock"]; ok {
				merged.StockStatus = document.StockStatusFor(merged.Stock, merged.MinStock)
			}

			d.Products[i] = merged
			updated = merged

			return nil
		}

		return ErrNotFound
	})
	if err != nil {
		return document.Product{}, err
	}

	return updated, nil
}

// Delete removes the product with the given id. A missing id is not an
// error.
func (s *Service) Delete(id int) error {
	return s.store.Update(func(d *document.Document) error {
		kept := d.Products[:0]

		for _, p := range d.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}

		d.Products = kept

		return nil
	})
}

// CreateBatch stores several products in one document write, assigning
// consecutive ids. Used by the CSV import.
func (s *Service) CreateBatch(products []document.Product) ([]document.Product, error) {
	if len(products) == 0 {
		return nil, nil
	}

	now := time.Now().Format(document.ISOFormat)
	stored := make([]document.Product, len(products))

	err := s.store.Update(func(d *document.Document) error {
		nextID := d.NextProductID()

		for i, p := range products {
			if p.SKU == "" {
				p.SKU = fmt.Sprintf("PROD-%s-%d", time.Now().Format("20060102150405"), i+1)
			}

			p.ID = nextID
			nextID++
			p.LastUpdated = now
			p.StockStatus = document.StockStatusFor(p.Stock, p.MinStock)

			d.Products = append(d.Products, p)
			stored[i] = p
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}
