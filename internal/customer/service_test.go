package customer_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizsuite/internal/customer"
	"bizsuite/internal/document"
	"bizsuite/internal/document/store"
)

func newService(t *testing.T, doc *document.Document) (*customer.Service, *store.Store) {
	t.Helper()

	s := store.New(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, s.Save(doc))

	return customer.NewService(s), s
}

func TestService_Create(t *testing.T) {
	svc, s := newService(t, document.Default())

	c := document.NewCustomer()
	c.Name = "Alice Wanjiru"
	c.Email = "alice@example.com"

	created, err := svc.Create(c)
	require.NoError(t, err)

	assert.Equal(t, 6, created.ID)
	assert.Equal(t, "Regular", created.Type)
	assert.Equal(t, "Kenya", created.Country)
	assert.Equal(t, "active", created.Status)

	doc, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Customers, 6)
}

func TestService_Update_MergesPatch(t *testing.T) {
	svc, _ := newService(t, document.Default())

	updated, err := svc.Update(1, json.RawMessage(`{"type": "VIP", "city": "Mombasa"}`))
	require.NoError(t, err)

	assert.Equal(t, "VIP", updated.Type)
	assert.Equal(t, "Mombasa", updated.City)
	// Untouched fields survive the merge.
	assert.Equal(t, "John Doe", updated.Name)
	assert.Equal(t, document.Count(12), updated.TotalOrders)
}

func TestService_Update_IDIsImmutable(t *testing.T) {
	svc, _ := newService(t, document.Default())

	updated, err := svc.Update(2, json.RawMessage(`{"id": 99, "name": "Renamed"}`))
	require.NoError(t, err)

	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _ := newService(t, document.Default())

	_, err := svc.Update(999, json.RawMessage(`{"name": "Ghost"}`))
	assert.ErrorIs(t, err, customer.ErrNotFound)
}

func TestService_Update_InvalidPatch(t *testing.T) {
	svc, _ := newService(t, document.Default())

	_, err := svc.Update(1, json.RawMessage(`{"name": `))
	assert.Error(t, err)
}

func TestService_Delete(t *testing.T) {
	svc, s := newService(t, document.Default())

	require.NoError(t, svc.Delete(3))

	doc, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Customers, 4)

	for _, c := range doc.Customers {
		assert.NotEqual(t, 3, c.ID)
	}
}

func TestService_Delete_MissingIDIsNoop(t *testing.T) {
	svc, s := newService(t, document.Default())

	require.NoError(t, svc.Delete(999))

	doc, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Customers, 5)
}
