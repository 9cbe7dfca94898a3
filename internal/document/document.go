// Package document defines the single business document that holds every
// collection the system manages, plus the normalization rules that make
// any stored or uploaded document safe to operate on.
package document

import "encoding/json"

// Timestamp layouts used throughout the document. Transaction dates use
// the space-separated layout; sorting them lexicographically is sorting
// them chronologically.
const (
	TimestampFormat = "2006-01-02 15:04:05"
	ISOFormat       = "2006-01-02T15:04:05"
	DateFormat      = "2006-01-02"
)

// StockStatus classifies a product's inventory level.
type StockStatus string

const (
	StockOut StockStatus = "out"
	StockLow StockStatus = "low"
	StockOK  StockStatus = "ok"
)

// StockStatusFor derives the stock status from a stock count and its
// low-stock threshold.
func StockStatusFor(stock Count, minStock Number) StockStatus {
	switch {
	case stock <= 0:
		return StockOut
	case Number(stock) <= minStock:
		return StockLow
	default:
		return StockOK
	}
}

// TransactionType is free text in the stored document; these are the
// values the business logic reacts to.
type TransactionType string

const (
	TransactionSale     TransactionType = "sale"
	TransactionPurchase TransactionType = "purchase"
	TransactionRefund   TransactionType = "refund"
	TransactionExpense  TransactionType = "expense"
)

// Product is a stock-keeping item. Supplier is the supplier's display
// name, not an id; renaming a supplier breaks the link.
type Product struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	SKU         string      `json:"sku"`
	Category    string      `json:"category"`
	Supplier    string      `json:"supplier"`
	Price       Number      `json:"price"`
	Cost        Number      `json:"cost"`
	Stock       Count       `json:"stock"`
	MinStock    Number      `json:"min_stock"`
	MaxStock    Number      `json:"max_stock"`
	Barcode     string      `json:"barcode"`
	Unit        string      `json:"unit"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	StockStatus StockStatus `json:"stock_status,omitempty"`
	LastUpdated string      `json:"last_updated"`
}

// Customer carries running totals that only sale transactions advance.
type Customer struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Email       string `json:"email"`
	TotalSpent  Number `json:"total_spent"`
	TotalOrders Count  `json:"total_orders"`
	LastOrder   string `json:"last_order"`
	Type        string `json:"type"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Status      string `json:"status"`
	JoinDate    string `json:"join_date"`
}

// LineItem is one sold product inside a sale transaction, referenced by
// product name.
type LineItem struct {
	Name     string `json:"name"`
	Quantity Count  `json:"quantity"`
	Price    Number `json:"price"`
}

// Transaction is append-only: the API exposes no update or delete for it.
type Transaction struct {
	ID            int             `json:"id"`
	Date          string          `json:"date"`
	Type          TransactionType `json:"type"`
	Amount        Number          `json:"amount"`
	Customer      string          `json:"customer"`
	Supplier      string          `json:"supplier"`
	Items         []LineItem      `json:"items"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
}

// Supplier lists the products it provides by name.
type Supplier struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Contact  string   `json:"contact"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Products []string `json:"products"`
	Status   string   `json:"status"`
	Address  string   `json:"address"`
}

// Note uses a generated string token as its id, unlike the sequential
// integer ids of the other collections.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Settings is a singleton; no endpoint mutates it.
type Settings struct {
	TaxRate     Number `json:"tax_rate"`
	Currency    string `json:"currency"`
	CompanyName string `json:"company_name"`
}

// Document is the root structure persisted as one JSON file.
type Document struct {
	Products     []Product     `json:"products"`
	Transactions []Transaction `json:"transactions"`
	Customers    []Customer    `json:"customers"`
	Suppliers    []Supplier    `json:"suppliers"`
	Notes        []Note        `json:"notes"`
	Settings     Settings      `json:"settings"`
}

// NextProductID returns (highest existing id)+1, or 1 for an empty
// collection. Deleting the highest-id record and creating a new one
// reissues the deleted id; acceptable at this system's scale.
func (d *Document) NextProductID() int {
	maxID := 0
	for _, p := range d.Products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	return maxID + 1
}

func (d *Document) NextCustomerID() int {
	maxID := 0
	for _, c := range d.Customers {
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	return maxID + 1
}

func (d *Document) NextTransactionID() int {
	maxID := 0
	for _, t := range d.Transactions {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	return maxID + 1
}

func (d *Document) NextSupplierID() int {
	maxID := 0
	for _, s := range d.Suppliers {
		if s.ID > maxID {
			maxID = s.ID
		}
	}

	return maxID + 1
}

// Merge applies a shallow key-by-key overwrite of patch onto dst, which
// must be a pointer to a record type. Keys absent from the patch keep
// their current values; unknown keys are dropped.
func Merge(dst any, patch []byte) error {
	base, err := json.Marshal(dst)
	if err != nil {
		return err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return err
	}

	var updates map[string]json.RawMessage
	if err := json.Unmarshal(patch, &updates); err != nil {
		return err
	}

	for k, v := range updates {
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return err
	}

	return json.Unmarshal(out, dst)
}
