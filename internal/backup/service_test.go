package backup_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizsuite/internal/backup"
	"bizsuite/internal/document"
	"bizsuite/internal/document/store"
)

func newService(t *testing.T, doc *document.Document) (*backup.Service, *store.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	s := store.New(path)
	require.NoError(t, s.Save(doc))

	return backup.NewService(s), s, path
}

func TestService_Snapshot(t *testing.T) {
	svc, _, _ := newService(t, document.Default())

	data, filename, err := svc.Snapshot()
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^business_backup_\d{8}_\d{6}\.json$`), filename)

	doc, err := document.Decode(data)
	require.NoError(t, err)
	assert.Len(t, doc.Products, 5)
	assert.Len(t, doc.Transactions, 5)
}

func TestService_SnapshotThenRestore_RoundTrips(t *testing.T) {
	doc := document.Default()
	doc.Settings.CompanyName = "Round Trip Ltd"

	svc, s, _ := newService(t, doc)

	data, _, err := svc.Snapshot()
	require.NoError(t, err)

	// Restore into a fresh store.
	other := store.New(filepath.Join(t.TempDir(), "data.json"))
	restored := backup.NewService(other)
	require.NoError(t, restored.Restore(data))

	got, err := other.Load()
	require.NoError(t, err)

	want, err := s.Load()
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, "Round Trip Ltd", got.Settings.CompanyName)
}

func TestService_Restore_FillsMissingCollections(t *testing.T) {
	svc, s, _ := newService(t, document.Default())

	require.NoError(t, svc.Restore([]byte(`{"products": []}`)))

	doc, err := s.Load()
	require.NoError(t, err)

	// The uploaded empty collection is honored, absent ones come back
	// seeded.
	assert.Empty(t, doc.Products)
	assert.Len(t, doc.Customers, 5)
	assert.Equal(t, "KES", doc.Settings.Currency)
}

func TestService_Restore_InvalidJSONWritesNothing(t *testing.T) {
	svc, _, path := newService(t, document.Default())

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Error(t, svc.Restore([]byte(`{"products": [`)))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
