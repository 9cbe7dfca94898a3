package document

import (
	"bytes"
	"encoding/json"
)

// Record decoding starts from the New* default value of each type, so a
// key that is absent from the JSON keeps its default. This is the
// normalization contract: any document that comes through Decode has
// every field filled and every numeric field coerced.

func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product

	v := plain(NewProduct())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*p = Product(v)

	return nil
}

func (c *Customer) UnmarshalJSON(data []byte) error {
	type plain Customer

	v := plain(NewCustomer())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*c = Customer(v)

	return nil
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction

	v := plain(NewTransaction())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if v.Items == nil {
		v.Items = []LineItem{}
	}

	*t = Transaction(v)

	return nil
}

func (it *LineItem) UnmarshalJSON(data []byte) error {
	type plain LineItem

	v := plain(NewLineItem())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*it = LineItem(v)

	return nil
}

func (s *Supplier) UnmarshalJSON(data []byte) error {
	type plain Supplier

	v := plain(NewSupplier())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if v.Products == nil {
		v.Products = []string{}
	}

	*s = Supplier(v)

	return nil
}

func (n *Note) UnmarshalJSON(data []byte) error {
	type plain Note

	v := plain(NewNote())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*n = Note(v)

	return nil
}

func (s *Settings) UnmarshalJSON(data []byte) error {
	type plain Settings

	v := plain(NewSettings())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*s = Settings(v)

	return nil
}

// Decode parses and normalizes a full document. It starts from the
// built-in default document, so a missing top-level collection is
// substituted whole. A parse error is returned to the caller; deciding
// whether to surface or mask it belongs to the store.
func Decode(data []byte) (*Document, error) {
	doc := Default()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}

	doc.fillMissing()

	return doc, nil
}

// Encode serializes the document pretty-printed with 2-space indent, the
// shape the data file keeps on disk for human inspection.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")

	if err := enc.Encode(d); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Normalize runs any in-memory document through the same default-filling
// and coercion path a stored document takes. It is idempotent and never
// fails: a document that cannot round-trip yields the default document.
func Normalize(d *Document) *Document {
	raw, err := json.Marshal(d)
	if err != nil {
		return Default()
	}

	nd, err := Decode(raw)
	if err != nil {
		return Default()
	}

	return nd
}

// fillMissing substitutes default values for top-level entries that are
// still nil after decoding (absent keys, or JSON null).
func (d *Document) fillMissing() {
	def := Default()

	if d.Products == nil {
		d.Products = def.Products
	}

	if d.Transactions == nil {
		d.Transactions = def.Transactions
	}

	if d.Customers == nil {
		d.Customers = def.Customers
	}

	if d.Suppliers == nil {
		d.Suppliers = def.Suppliers
	}

	if d.Notes == nil {
		d.Notes = def.Notes
	}

	if d.Settings == (Settings{}) {
		d.Settings = def.Settings
	}
}
