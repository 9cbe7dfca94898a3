// Package analytics derives read-only reports from the full document on
// every call. Reports never fail: when the document cannot be read, a
// zeroed report is returned and the cause logged, keeping the analytics
// endpoints available no matter what.
package analytics

import (
	"log/slog"
	"sort"
	"time"

	"bizsuite/internal/document"
)

type Store interface {
	Load() (*document.Document, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// DefaultWindowDays is the sales window applied when the caller does not
// ask for one.
const DefaultWindowDays = 30

// ProductRevenue is one entry of the top-products ranking.
type ProductRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// SalesReport is a dense daily time series: one entry per calendar day
// in the window, zero-filled where nothing was sold.
type SalesReport struct {
	Dates         []string         `json:"dates"`
	Sales         []float64        `json:"sales"`
	TopProducts   []ProductRevenue `json:"top_products"`
	TotalSales    float64          `json:"total_sales"`
	AvgDailySales float64          `json:"avg_daily_sales"`
}

// Sales buckets sale transactions of the last `days` calendar days
// (ending today) into per-day sums and ranks products by revenue within
// the window. Transactions with unparseable dates are skipped.
func (s *Service) Sales(days int) *SalesReport {
	if days <= 0 {
		days = DefaultWindowDays
	}

	report := &SalesReport{
		Dates:       make([]string, 0, days),
		Sales:       make([]float64, days),
		TopProducts: []ProductRevenue{},
	}

	start := time.Now().AddDate(0, 0, -(days - 1))

	dayIndex := make(map[string]int, days)

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(document.DateFormat)
		report.Dates = append(report.Dates, date)
		dayIndex[date] = i
	}

	doc, err := s.store.Load()
	if err != nil {
		slog.Error("sales analytics unavailable, serving zeroed report", "error", err)
		return report
	}

	revenue := make(map[string]float64)

	var seen []string // product names in first-encounter order, for stable ties

	for _, t := range doc.Transactions {
		if t.Type != document.TransactionSale {
			continue
		}

		ts, err := time.Parse(document.TimestampFormat, t.Date)
		if err != nil {
			continue
		}

		i, ok := dayIndex[ts.Format(document.DateFormat)]
		if !ok {
			continue
		}

		report.Sales[i] += float64(t.Amount)

		for _, item := range t.Items {
			name := item.Name
			if name == "" {
				name = "Unknown"
			}

			if _, ok := revenue[name]; !ok {
				seen = append(seen, name)
			}

			revenue[name] += float64(item.Quantity) * float64(item.Price)
		}
	}

	for _, v := range report.Sales {
		report.TotalSales += v
	}

	report.AvgDailySales = report.TotalSales / float64(days)

	sort.SliceStable(seen, func(i, j int) bool {
		return revenue[seen[i]] > revenue[seen[j]]
	})

	if len(seen) > 10 {
		seen = seen[:10]
	}

	for _, name := range seen {
		report.TopProducts = append(report.TopProducts, ProductRevenue{Name: name, Revenue: revenue[name]})
	}

	return report
}

// BalanceReport summarizes all-time income against expenses plus the
// current value held in stock.
type BalanceReport struct {
	Income               float64 `json:"income"`
	Expenses             float64 `json:"expenses"`
	StockValue           float64 `json:"stock_value"`
	GrossProfit          float64 `json:"gross_profit"`
	TotalCustomers       int     `json:"total_customers"`
	TotalActiveCustomers int     `json:"total_active_customers"`
	TotalProducts        int     `json:"total_products"`
}

func (s *Service) Balance() *BalanceReport {
	report := &BalanceReport{}

	doc, err := s.store.Load()
	if err != nil {
		slog.Error("balance unavailable, serving zeroed report", "error", err)
		return report
	}

	for _, t := range doc.Transactions {
		switch t.Type {
		case document.TransactionSale:
			report.Income += float64(t.Amount)
		case document.TransactionPurchase, document.TransactionExpense:
			report.Expenses += float64(t.Amount)
		}
	}

	for _, p := range doc.Products {
		report.StockValue += float64(p.Price) * float64(p.Stock)
	}

	report.GrossProfit = report.Income - report.Expenses
	report.TotalCustomers = len(doc.Customers)
	report.TotalActiveCustomers = countActive(doc.Customers)
	report.TotalProducts = len(doc.Products)

	return report
}

// TopCustomer is a spend-ranked customer summary.
type TopCustomer struct {
	Name        string  `json:"name"`
	TotalSpent  float64 `json:"total_spent"`
	TotalOrders int     `json:"total_orders"`
}

// CustomerReport segments the customer base.
type CustomerReport struct {
	Distribution  map[string]int `json:"customer_distribution"`
	RepeatRate    float64        `json:"repeat_rate"`
	AvgOrderValue float64        `json:"avg_order_value"`
	TopCustomers  []TopCustomer  `json:"top_customers"`
}

func (s *Service) Customers() *CustomerReport {
	report := &CustomerReport{
		Distribution: map[string]int{},
		TopCustomers: []TopCustomer{},
	}

	doc, err := s.store.Load()
	if err != nil {
		slog.Error("customer analytics unavailable, serving zeroed report", "error", err)
		return report
	}

	var (
		repeat      int
		totalSpent  float64
		totalOrders int
	)

	for _, c := range doc.Customers {
		report.Distribution[c.Type]++

		if c.TotalOrders > 1 {
			repeat++
		}

		totalSpent += float64(c.TotalSpent)
		totalOrders += int(c.TotalOrders)
	}

	if len(doc.Customers) > 0 {
		report.RepeatRate = float64(repeat) / float64(len(doc.Customers)) * 100
	}

	if totalOrders > 0 {
		report.AvgOrderValue = totalSpent / float64(totalOrders)
	}

	report.TopCustomers = topCustomers(doc.Customers, 5)

	return report
}

// StockAlert flags a product at or below its low-stock threshold.
type StockAlert struct {
	Name     string  `json:"name"`
	Stock    int     `json:"stock"`
	MinStock float64 `json:"min_stock"`
	Status   string  `json:"status"`
}

// DashboardStats are the headline numbers.
type DashboardStats struct {
	TotalSales     float64 `json:"total_sales"`
	TotalProducts  int     `json:"total_products"`
	TotalCustomers int     `json:"total_customers"` // active customers only
	StockValue     float64 `json:"stock_value"`
	GrossProfit    float64 `json:"gross_profit"`
}

// Dashboard is the combined single read the dashboard page needs.
type Dashboard struct {
	Stats              DashboardStats         `json:"stats"`
	RecentTransactions []document.Transaction `json:"recent_transactions"`
	TopCustomers       []TopCustomer          `json:"top_customers"`
	StockAlerts        []StockAlert           `json:"stock_alerts"`
}

func (s *Service) Dashboard() *Dashboard {
	dash := &Dashboard{
		RecentTransactions: []document.Transaction{},
		TopCustomers:       []TopCustomer{},
		StockAlerts:        []StockAlert{},
	}

	doc, err := s.store.Load()
	if err != nil {
		slog.Error("dashboard unavailable, serving zeroed report", "error", err)
		return dash
	}

	var expenses float64

	for _, t := range doc.Transactions {
		switch t.Type {
		case document.TransactionSale:
			dash.Stats.TotalSales += float64(t.Amount)
		case document.TransactionPurchase, document.TransactionExpense:
			expenses += float64(t.Amount)
		}
	}

	dash.Stats.TotalProducts = len(doc.Products)
	dash.Stats.TotalCustomers = countActive(doc.Customers)
	dash.Stats.GrossProfit = dash.Stats.TotalSales - expenses

	for _, p := range doc.Products {
		dash.Stats.StockValue += float64(p.Price) * float64(p.Stock)

		if float64(p.Stock) <= float64(p.MinStock) {
			status := "Low Stock"
			if p.Stock == 0 {
				status = "Out of Stock"
			}

			dash.StockAlerts = append(dash.StockAlerts, StockAlert{
				Name:     p.Name,
				Stock:    int(p.Stock),
				MinStock: float64(p.MinStock),
				Status:   status,
			})
		}
	}

	// Timestamps share a fixed layout, so a lexicographic sort on the
	// date string is chronological.
	recent := append([]document.Transaction(nil), doc.Transactions...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})

	if len(recent) > 5 {
		recent = recent[:5]
	}

	dash.RecentTransactions = recent
	dash.TopCustomers = topCustomers(doc.Customers, 5)

	return dash
}

func countActive(customers []document.Customer) int {
	n := 0

	for _, c := range customers {
		if c.Status == "active" {
			n++
		}
	}

	return n
}

func topCustomers(customers []document.Customer, limit int) []TopCustomer {
	ranked := append([]document.Customer(nil), customers...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	top := make([]TopCustomer, 0, len(ranked))
	for _, c := range ranked {
		top = append(top, TopCustomer{
			Name:        c.Name,
			TotalSpent:  float64(c.TotalSpent),
			TotalOrders: int(c.TotalOrders),
		})
	}

	return top
}
