// Package transaction implements the append-only transaction log and
// the side effects a sale applies to the rest of the document: stock
// decrements with status recompute, and customer running totals.
package transaction

import (
	"strings"
	"time"

	"bizsuite/internal/document"
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

func (s *Service) List() ([]document.Transaction, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	return doc.Transactions, nil
}

// Record appends a transaction. The id and date are server-assigned;
// client-supplied values for either are ignored. Sale transactions also
// apply their side effects before the document is persisted, so the
// append and the derived-field updates land in one write.
func (s *Service) Record(t document.Transaction) (document.Transaction, error) {
	t.Date = time.Now().Format(document.TimestampFormat)

	err := s.store.Update(func(d *document.Document) error {
		t.ID = d.NextTransactionID()

		if t.Type == document.TransactionSale {
			applySaleEffects(d, t)
		}

		d.Transactions = append(d.Transactions, t)

		return nil
	})
	if err != nil {
		return document.Transaction{}, err
	}

	return t, nil
}

// applySaleEffects updates the customer and product records a sale
// touches. Matching is by exact display name; names that match nothing
// are skipped silently.
func applySaleEffects(d *document.Document, t document.Transaction) {
	if t.Customer != "" {
		for i := range d.Customers {
			c := &d.Customers[i]
			if c.Name != t.Customer {
				continue
			}

			c.TotalOrders++
			c.TotalSpent += t.Amount
			c.LastOrder, _, _ = strings.Cut(t.Date, " ")

			break
		}
	}

	for _, item := range t.Items {
		for i := range d.Products {
			p := &d.Products[i]
			if p.Name != item.Name {
				continue
			}

			p.Stock -= item.Quantity
			if p.Stock < 0 {
				p.Stock = 0
			}

			p.StockStatus = document.StockStatusFor(p.Stock, p.MinStock)

			break
		}
	}
}
