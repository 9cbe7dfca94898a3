// Package importer parses product CSV uploads into products ready for
// bulk creation. The accepted column set mirrors the CSV export, so an
// exported file re-imports as-is.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bizsuite/internal/document"
	"bizsuite/internal/encoding"
)

// ErrNoHeader means no row looked like a product header.
var ErrNoHeader = errors.New("no product header row found: expected a name column plus at least one other known column")

// Parser reads a product CSV. The header does not have to be the first
// row; the parser scans for the first row carrying known column names,
// which tolerates title rows that spreadsheet tools prepend.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

var knownColumns = []string{
	"name", "sku", "category", "price", "cost", "stock",
	"min_stock", "max_stock", "supplier", "status", "barcode", "description", "unit",
}

// colIndex maps recognized column names to their position in the row.
type colIndex map[string]int

func (p *Parser) Parse(r io.Reader) ([]document.Product, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, ErrNoHeader
	}

	var products []document.Product

	for _, row := range rows[headerIdx+1:] {
		name := cols.cell(row, "name")
		if name == "" {
			continue
		}

		prod := document.NewProduct()
		prod.Name = name
		prod.SKU = cols.cell(row, "sku")
		prod.Category = cols.cell(row, "category")
		prod.Supplier = cols.cell(row, "supplier")
		prod.Barcode = cols.cell(row, "barcode")
		prod.Description = cols.cell(row, "description")

		if v := cols.cell(row, "status"); v != "" {
			prod.Status = v
		}

		if v := cols.cell(row, "unit"); v != "" {
			prod.Unit = v
		}

		prod.Price = cols.number(row, "price", prod.Price)
		prod.Cost = cols.number(row, "cost", prod.Cost)
		prod.MinStock = cols.number(row, "min_stock", prod.MinStock)
		prod.MaxStock = cols.number(row, "max_stock", prod.MaxStock)
		prod.Stock = document.Count(int(cols.number(row, "stock", document.Number(prod.Stock))))

		products = append(products, prod)
	}

	return products, nil
}

// findHeader returns the column index of the first row that names a
// "name" column plus at least one other known column.
func findHeader(rows [][]string) (colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, c := range row {
			name := strings.ToLower(strings.TrimSpace(c))

			for _, known := range knownColumns {
				if name == known {
					cols[name] = i
					break
				}
			}
		}

		if _, ok := cols["name"]; ok && len(cols) >= 2 {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func (c colIndex) cell(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// number applies the same coercion policy as the JSON API: an empty or
// missing cell keeps the default, unparseable text becomes 0.
func (c colIndex) number(row []string, name string, def document.Number) document.Number {
	s := c.cell(row, name)
	if s == "" {
		return def
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return document.Number(f)
}
