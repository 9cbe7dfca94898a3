// Package export renders collections as CSV downloads with fixed column
// sets.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"bizsuite/internal/document"
)

// Kind selects which collection to export.
type Kind string

const (
	KindProducts     Kind = "products"
	KindCustomers    Kind = "customers"
	KindTransactions Kind = "transactions"
)

var ErrUnknownKind = errors.New("unknown export type")

type Store interface {
	Load() (*document.Document, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CSV renders the named collection. The returned filename is the
// suggested download name.
func (s *Service) CSV(kind Kind) (data []byte, filename string, err error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, "", fmt.Errorf("loading document: %w", err)
	}

	switch kind {
	case KindProducts:
		data, err = productsCSV(doc.Products)
	case KindCustomers:
		data, err = customersCSV(doc.Customers)
	case KindTransactions:
		data, err = transactionsCSV(doc.Transactions)
	default:
		return nil, "", ErrUnknownKind
	}

	if err != nil {
		return nil, "", err
	}

	return data, string(kind) + "_export.csv", nil
}

func productsCSV(products []document.Product) ([]byte, error) {
	return writeCSV(
		[]string{
			"id", "name", "sku", "category", "price", "cost", "stock",
			"min_stock", "max_stock", "supplier", "status", "barcode", "description",
		},
		len(products),
		func(i int) []string {
			p := products[i]

			return []string{
				strconv.Itoa(p.ID), p.Name, p.SKU, p.Category,
				num(p.Price), num(p.Cost), strconv.Itoa(int(p.Stock)),
				num(p.MinStock), num(p.MaxStock), p.Supplier, p.Status, p.Barcode, p.Description,
			}
		},
	)
}

// customersCSV maps the stored contact field to a phone column.
func customersCSV(customers []document.Customer) ([]byte, error) {
	return writeCSV(
		[]string{
			"id", "name", "email", "phone", "type", "address", "city",
			"country", "total_orders", "total_spent", "last_order", "status", "join_date",
		},
		len(customers),
		func(i int) []string {
			c := customers[i]

			return []string{
				strconv.Itoa(c.ID), c.Name, c.Email, c.Contact, c.Type, c.Address, c.City,
				c.Country, strconv.Itoa(int(c.TotalOrders)), num(c.TotalSpent),
				c.LastOrder, c.Status, c.JoinDate,
			}
		},
	)
}

func transactionsCSV(transactions []document.Transaction) ([]byte, error) {
	return writeCSV(
		[]string{
			"id", "date", "type", "amount", "customer", "supplier",
			"description", "payment_method", "status", "items_count",
		},
		len(transactions),
		func(i int) []string {
			t := transactions[i]

			return []string{
				strconv.Itoa(t.ID), t.Date, string(t.Type), num(t.Amount), t.Customer, t.Supplier,
				t.Description, t.PaymentMethod, t.Status, strconv.Itoa(len(t.Items)),
			}
		},
	)
}

func writeCSV(header []string, rows int, row func(i int) []string) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for i := 0; i < rows; i++ {
		if err := w.Write(row(i)); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}

// num renders a numeric field the way it appears in JSON: no exponent,
// no trailing zeros.
func num(n document.Number) string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
