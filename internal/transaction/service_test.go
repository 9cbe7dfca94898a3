package transaction_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizsuite/internal/document"
	"bizsuite/internal/document/store"
	"bizsuite/internal/transaction"
)

func newService(t *testing.T, doc *document.Document) (*transaction.Service, *store.Store) {
	t.Helper()

	s := store.New(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, s.Save(doc))

	return transaction.NewService(s), s
}

func TestService_Record_AssignsIDAndDate(t *testing.T) {
	svc, _ := newService(t, document.Default())

	tx := document.NewTransaction()
	tx.Type = document.TransactionExpense
	tx.Amount = 500
	tx.Date = "1999-01-01 00:00:00" // client-supplied date is ignored

	stored, err := svc.Record(tx)
	require.NoError(t, err)

	assert.Equal(t, 6, stored.ID)

	ts, err := time.Parse(document.TimestampFormat, stored.Date)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestService_Record_SaleSideEffects(t *testing.T) {
	svc, s := newService(t, document.Default())

	// John Doe starts at 12 orders / 5800 spent; 170lts Drum at stock 15.
	tx := document.NewTransaction()
	tx.Type = document.TransactionSale
	tx.Customer = "John Doe"
	tx.Amount = 1000
	tx.Items = []document.LineItem{{Name: "170lts Drum", Quantity: 1, Price: 2200}}

	_, err := svc.Record(tx)
	require.NoError(t, err)

	doc, err := s.Load()
	require.NoError(t, err)

	john := doc.Customers[0]
	assert.Equal(t, document.Count(13), john.TotalOrders)
	assert.Equal(t, document.Number(6800), john.TotalSpent)
	assert.Equal(t, time.Now().Format(document.DateFormat), john.LastOrder)

	drum := doc.Products[2]
	require.Equal(t, "170lts Drum", drum.Name)
	assert.Equal(t, document.Count(14), drum.Stock)
	assert.Equal(t, document.StockOK, drum.StockStatus)
}

func TestService_Record_StockFloorsAtZero(t *testing.T) {
	svc, s := newService(t, document.Default())

	tx := document.NewTransaction()
	tx.Type = document.TransactionSale
	tx.Items = []document.LineItem{{Name: "170lts Drum", Quantity: 100, Price: 2200}}

	_, err := svc.Record(tx)
	require.NoError(t, err)

	doc, err := s.Load()
	require.NoError(t, err)

	drum := doc.Products[2]
	assert.Equal(t, document.Count(0), drum.Stock)
	assert.Equal(t, document.StockOut, drum.StockStatus)
}

func TestService_Record_UnmatchedNamesAreSkipped(t *testing.T) {
	svc, s := newService(t, document.Default())

	tx := document.NewTransaction()
	tx.Type = document.TransactionSale
	tx.Customer = "Nobody"
	tx.Amount = 100
	tx.Items = []document.LineItem{{Name: "No Such Product", Quantity: 1, Price: 100}}

	stored, err := svc.Record(tx)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.ID)

	doc, err := s.Load()
	require.NoError(t, err)

	// Nothing else changed.
	for i, c := range document.Default().Customers {
		assert.Equal(t, c.TotalOrders, doc.Customers[i].TotalOrders)
		assert.Equal(t, c.TotalSpent, doc.Customers[i].TotalSpent)
	}

	for i, p := range document.Default().Products {
		assert.Equal(t, p.Stock, doc.Products[i].Stock)
	}
}

func TestService_Record_NonSaleHasNoSideEffects(t *testing.T) {
	svc, s := newService(t, document.Default())

	tx := document.NewTransaction()
	tx.Type = document.TransactionRefund
	tx.Customer = "John Doe"
	tx.Amount = 1500

	_, err := svc.Record(tx)
	require.NoError(t, err)

	doc, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, document.Count(12), doc.Customers[0].TotalOrders)
	assert.Equal(t, document.Number(5800), doc.Customers[0].TotalSpent)
}

func TestService_List(t *testing.T) {
	svc, _ := newService(t, document.Default())

	txs, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, txs, 5)
}
