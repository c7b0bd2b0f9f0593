package store

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	s, err := NewLocal(t.TempDir(), log)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestLocalSeedsOnFirstUse(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	rows, err := s.Exec(ctx, Select{Table: TableProducts})
	require.NoError(t, err)
	assert.Len(t, rows, len(SeedProducts()))

	rows, err = s.Exec(ctx, Select{Table: TableCategories})
	require.NoError(t, err)
	assert.Len(t, rows, len(SeedCategories()))
}

// Filters are the intersection of predicates applied in sequence,
// truncated to the limit, preserving collection order.
func TestLocalSelectFilterIntersection(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	rows, err := s.Exec(ctx, Select{
		Table: TableProducts,
		Where: []Cond{Eq("status", "active"), Eq("is_on_sale", true)},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "prod-1", rows[0].Str("id"))
	assert.Equal(t, "prod-4", rows[1].Str("id"))

	rows, err = s.Exec(ctx, Select{
		Table: TableProducts,
		Where: []Cond{Eq("status", "active"), Eq("is_on_sale", true)},
		Limit: 1,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "prod-1", rows[0].Str("id"))
}

func TestLocalSelectOrderByCreatedAtDesc(t *testing.T) {
	s := newTestLocal(t)

	rows, err := s.Exec(context.Background(), Select{
		Table:   TableProducts,
		OrderBy: "created_at",
		Desc:    true,
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "prod-1", rows[0].Str("id"))
	assert.Equal(t, "prod-4", rows[3].Str("id"))
}

func TestLocalInsertGeneratesIDAndTimestamps(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	rows, err := s.Exec(ctx, Insert{
		Table:   TableProducts,
		Columns: []string{"title_en", "price", "status"},
		Values:  []any{"USB-C Cable", 590.0, "draft"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotEmpty(t, rows[0].Str("id"))
	assert.NotEmpty(t, rows[0].Str("created_at"))
	assert.NotEmpty(t, rows[0].Str("updated_at"))
}

// A draft product never shows up in the storefront listing, which always
// filters on active status.
func TestLocalDraftExcludedFromActiveSelect(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	inserted, err := s.Exec(ctx, Insert{
		Table:   TableProducts,
		Columns: []string{"title_en", "price", "status"},
		Values:  []any{"Hidden", 100.0, "draft"},
	})
	require.NoError(t, err)

	rows, err := s.Exec(ctx, Select{
		Table: TableProducts,
		Where: []Cond{Eq("status", "active")},
	})
	require.NoError(t, err)
	for _, r := range rows {
		assert.NotEqual(t, inserted[0].Str("id"), r.Str("id"))
	}
}

func TestLocalUpdateStampsOnlyUpdatedAt(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	before, err := s.Exec(ctx, Select{Table: TableProducts, Where: []Cond{Eq("id", "prod-2")}})
	require.NoError(t, err)
	require.Len(t, before, 1)

	updated, err := s.Exec(ctx, Update{
		Table: TableProducts,
		Set:   []Assign{{Column: "updated_at", Value: "2025-06-01T00:00:00Z"}},
		Where: []Cond{Eq("id", "prod-2")},
	})
	require.NoError(t, err)
	require.Len(t, updated, 1)

	for k, v := range before[0] {
		if k == "updated_at" {
			continue
		}
		assert.Equal(t, v, updated[0][k], "column %s changed", k)
	}
}

func TestLocalDeleteReturnsRemovedRow(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	removed, err := s.Exec(ctx, Delete{Table: TableProducts, Where: []Cond{Eq("id", "prod-3")}})
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, "prod-3", removed[0].Str("id"))

	// Deleting again finds nothing.
	removed, err = s.Exec(ctx, Delete{Table: TableProducts, Where: []Cond{Eq("id", "prod-3")}})
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestLocalBulkOperationsByIDList(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	updated, err := s.Exec(ctx, Update{
		Table: TableProducts,
		Set:   []Assign{{Column: "status", Value: "draft"}},
		Where: []Cond{InList("id", []any{"prod-1", "prod-2"})},
	})
	require.NoError(t, err)
	assert.Len(t, updated, 2)

	removed, err := s.Exec(ctx, Delete{
		Table: TableProducts,
		Where: []Cond{InList("id", []any{"prod-1", "prod-2"})},
	})
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	rows, err := s.Exec(ctx, Select{Table: TableProducts})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestLocalUnsupportedTable(t *testing.T) {
	s := newTestLocal(t)

	_, err := s.Exec(context.Background(), Select{Table: TableOrders})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestLocalPersistsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	ctx := context.Background()

	s, err := NewLocal(dir, log)
	require.NoError(t, err)
	inserted, err := s.Exec(ctx, Insert{
		Table:   TableProducts,
		Columns: []string{"title_en", "price", "status"},
		Values:  []any{"Car Mount", 1290.0, "active"},
	})
	require.NoError(t, err)
	s.Close()

	s2, err := NewLocal(dir, log)
	require.NoError(t, err)
	defer s2.Close()

	rows, err := s2.Exec(ctx, Select{
		Table: TableProducts,
		Where: []Cond{Eq("id", inserted[0].Str("id"))},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Car Mount", rows[0].Str("title_en"))
}

func TestLocalReset(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	_, err := s.Exec(ctx, Delete{Table: TableProducts, Where: []Cond{Eq("id", "prod-1")}})
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))

	rows, err := s.Exec(ctx, Select{Table: TableProducts})
	require.NoError(t, err)
	assert.Len(t, rows, len(SeedProducts()))
}

func TestLocalSyncReplaysRemoteWrite(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	remote := Row{"id": "prod-2", "title_en": "Renamed Remotely", "status": "active"}
	s.Sync(ctx, Update{Table: TableProducts}, []Row{remote})

	rows, err := s.Exec(ctx, Select{Table: TableProducts, Where: []Cond{Eq("id", "prod-2")}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Renamed Remotely", rows[0].Str("title_en"))

	// Deletes replay too.
	s.Sync(ctx, Delete{Table: TableProducts}, []Row{remote})
	rows, err = s.Exec(ctx, Select{Table: TableProducts, Where: []Cond{Eq("id", "prod-2")}})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLocalSyncIgnoresOtherTables(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	s.Sync(ctx, Insert{Table: TableOrders}, []Row{{"id": "ord-1"}})

	rows, err := s.Exec(ctx, Select{Table: TableProducts})
	require.NoError(t, err)
	assert.Len(t, rows, len(SeedProducts()))
}
