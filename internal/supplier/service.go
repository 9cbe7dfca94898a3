// Package supplier implements the supplier collection. Suppliers are
// list-and-create only; the API exposes no update or delete for them.
package supplier

import "bizsuite/internal/document"

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

func (s *Service) List() ([]document.Supplier, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	return doc.Suppliers, nil
}

func (s *Service) Create(sup document.Supplier) (document.Supplier, error) {
	err := s.store.Update(func(d *document.Document) error {
		sup.ID = d.NextSupplierID()
		d.Suppliers = append(d.Suppliers, sup)

		return nil
	})
	if err != nil {
		return document.Supplier{}, err
	}

	return sup, nil
}
