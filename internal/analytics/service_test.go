package analytics_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizsuite/internal/analytics"
	"bizsuite/internal/document"
	"bizsuite/internal/document/store"
)

func newService(t *testing.T, doc *document.Document) *analytics.Service {
	t.Helper()

	s := store.New(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, s.Save(doc))

	return analytics.NewService(s)
}

func TestService_Sales_DenseDateAxis(t *testing.T) {
	svc := newService(t, document.Default())

	report := svc.Sales(3)

	require.Len(t, report.Dates, 3)
	require.Len(t, report.Sales, 3)

	now := time.Now()
	assert.Equal(t, now.AddDate(0, 0, -2).Format(document.DateFormat), report.Dates[0])
	assert.Equal(t, now.AddDate(0, 0, -1).Format(document.DateFormat), report.Dates[1])
	assert.Equal(t, now.Format(document.DateFormat), report.Dates[2])
}

func TestService_Sales_BucketsByDay(t *testing.T) {
	now := time.Now()

	doc := document.Default()
	doc.Transactions = []document.Transaction{
		{
			ID: 1, Type: document.TransactionSale, Amount: 300,
			Date:  now.Format(document.TimestampFormat),
			Items: []document.LineItem{{Name: "170lts Drum", Quantity: 2, Price: 150}},
		},
		{
			ID: 2, Type: document.TransactionSale, Amount: 100,
			Date:  now.AddDate(0, 0, -1).Format(document.TimestampFormat),
			Items: []document.LineItem{{Name: "80lts Plastic Drum", Quantity: 1, Price: 100}},
		},
		// Outside the window.
		{
			ID: 3, Type: document.TransactionSale, Amount: 999,
			Date: now.AddDate(0, 0, -10).Format(document.TimestampFormat),
		},
		// Wrong type.
		{
			ID: 4, Type: document.TransactionExpense, Amount: 999,
			Date: now.Format(document.TimestampFormat),
		},
		// Unparseable date.
		{
			ID: 5, Type: document.TransactionSale, Amount: 999,
			Date: "not a date",
		},
	}

	report := newService(t, doc).Sales(3)

	assert.Equal(t, []float64{0, 100, 300}, report.Sales)
	assert.Equal(t, 400.0, report.TotalSales)
	assert.InDelta(t, 400.0/3, report.AvgDailySales, 1e-9)

	require.Len(t, report.TopProducts, 2)
	assert.Equal(t, "170lts Drum", report.TopProducts[0].Name)
	assert.Equal(t, 300.0, report.TopProducts[0].Revenue)
	assert.Equal(t, "80lts Plastic Drum", report.TopProducts[1].Name)
}

func TestService_Sales_DefaultsWindow(t *testing.T) {
	report := newService(t, document.Default()).Sales(0)

	assert.Len(t, report.Dates, analytics.DefaultWindowDays)
	assert.Len(t, report.Sales, analytics.DefaultWindowDays)
}

func TestService_Balance(t *testing.T) {
	report := newService(t, document.Default()).Balance()

	assert.Equal(t, 8000.0, report.Income)
	assert.Equal(t, 9200.0, report.Expenses)
	assert.Equal(t, 124000.0, report.StockValue)
	assert.Equal(t, -1200.0, report.GrossProfit)
	assert.Equal(t, 5, report.TotalCustomers)
	assert.Equal(t, 4, report.TotalActiveCustomers)
	assert.Equal(t, 5, report.TotalProducts)
}

func TestService_Balance_EmptyDocument(t *testing.T) {
	doc := document.Default()
	doc.Products = []document.Product{}
	doc.Transactions = []document.Transaction{}
	doc.Customers = []document.Customer{}

	report := newService(t, doc).Balance()

	assert.Zero(t, report.Income)
	assert.Zero(t, report.Expenses)
	assert.Zero(t, report.StockValue)
	assert.Zero(t, report.GrossProfit)
	assert.Zero(t, report.TotalCustomers)
}

func TestService_Customers(t *testing.T) {
	report := newService(t, document.Default()).Customers()

	assert.Equal(t, map[string]int{
		"VIP":       1,
		"Regular":   2,
		"Corporate": 1,
		"Wholesale": 1,
	}, report.Distribution)

	// Every seed customer has more than one order.
	assert.Equal(t, 100.0, report.RepeatRate)
	assert.InDelta(t, 592000.0/35, report.AvgOrderValue, 0.01)

	require.Len(t, report.TopCustomers, 5)
	assert.Equal(t, "Tech Solutions Ltd", report.TopCustomers[0].Name)
	assert.Equal(t, "Robert Kimani", report.TopCustomers[1].Name)
	assert.Equal(t, "Maria Garcia", report.TopCustomers[2].Name)
	assert.Equal(t, "John Doe", report.TopCustomers[3].Name)
	assert.Equal(t, "Jane Smith", report.TopCustomers[4].Name)
}

func TestService_Customers_EmptyDocument(t *testing.T) {
	doc := document.Default()
	doc.Customers = []document.Customer{}

	report := newService(t, doc).Customers()

	assert.Zero(t, report.RepeatRate)
	assert.Zero(t, report.AvgOrderValue)
	assert.Empty(t, report.Distribution)
	assert.Empty(t, report.TopCustomers)
}

func TestService_Dashboard(t *testing.T) {
	dash := newService(t, document.Default()).Dashboard()

	assert.Equal(t, 8000.0, dash.Stats.TotalSales)
	assert.Equal(t, 5, dash.Stats.TotalProducts)
	assert.Equal(t, 4, dash.Stats.TotalCustomers)
	assert.Equal(t, 124000.0, dash.Stats.StockValue)
	assert.Equal(t, -1200.0, dash.Stats.GrossProfit)

	// Most recent first.
	require.Len(t, dash.RecentTransactions, 5)
	for i, want := range []int{5, 4, 3, 2, 1} {
		assert.Equal(t, want, dash.RecentTransactions[i].ID)
	}

	require.Len(t, dash.TopCustomers, 5)
	assert.Equal(t, "Tech Solutions Ltd", dash.TopCustomers[0].Name)

	// Every seed product sits above its threshold.
	assert.Empty(t, dash.StockAlerts)
}

func TestService_Dashboard_StockAlerts(t *testing.T) {
	doc := document.Default()
	doc.Products = []document.Product{
		{ID: 1, Name: "Empty", Stock: 0, MinStock: 5},
		{ID: 2, Name: "Low", Stock: 3, MinStock: 5},
		{ID: 3, Name: "Fine", Stock: 50, MinStock: 5},
	}

	dash := newService(t, doc).Dashboard()

	require.Len(t, dash.StockAlerts, 2)
	assert.Equal(t, "Empty", dash.StockAlerts[0].Name)
	assert.Equal(t, "Out of Stock", dash.StockAlerts[0].Status)
	assert.Equal(t, "Low", dash.StockAlerts[1].Name)
	assert.Equal(t, "Low Stock", dash.StockAlerts[1].Status)
}
