package products

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/i18n"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/product"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	local, err := store.NewLocal(t.TempDir(), log)
	require.NoError(t, err)
	t.Cleanup(local.Close)
	return NewService(local, log)
}

// The storefront listing always filters status=active, so a draft product
// must never appear in it.
func TestListExcludesDraft(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Title:    i18n.Text{Sr: "Skrivena maska", En: "Hidden Case"},
		Price:    990,
		Category: "phone-cases",
		Status:   product.StatusDraft,
	})
	require.NoError(t, err)

	for _, p := range svc.List(ctx, Filters{}) {
		assert.NotEqual(t, created.ID, p.ID)
	}
	// Admin listing still sees it.
	found := false
	for _, p := range svc.ListAll(ctx) {
		if p.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestListFilterCombination(t *testing.T) {
	svc := newTestService(t)
	onSale := true

	items := svc.List(context.Background(), Filters{OnSale: &onSale, Limit: 1})
	require.Len(t, items, 1)
	assert.Equal(t, "prod-1", items[0].ID)
	assert.True(t, items[0].IsOnSale)
	assert.Equal(t, product.StatusActive, items[0].Status)
}

// An empty partial update leaves every field unchanged except the update
// timestamp.
func TestUpdateEmptyPartialIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before := svc.Get(ctx, "prod-1")
	require.NotNil(t, before)

	after, err := svc.Update(ctx, "prod-1", UpdateInput{})
	require.NoError(t, err)

	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Price, after.Price)
	assert.Equal(t, before.OldPrice, after.OldPrice)
	assert.Equal(t, before.Category, after.Category)
	assert.Equal(t, before.Stock, after.Stock)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.IsNew, after.IsNew)
	assert.Equal(t, before.IsOnSale, after.IsOnSale)
	assert.Equal(t, before.Image, after.Image)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestUpdateClearsOldPrice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var none *float64
	after, err := svc.Update(ctx, "prod-1", UpdateInput{OldPrice: &none})
	require.NoError(t, err)
	assert.Nil(t, after.OldPrice)
}

func TestBulkDeleteEmptyIsNoOp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before := len(svc.ListAll(ctx))
	require.NoError(t, svc.BulkDelete(ctx, []string{}))
	assert.Len(t, svc.ListAll(ctx), before)
}

func TestBulkDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.BulkDelete(ctx, []string{"prod-1", "prod-2"}))
	assert.Nil(t, svc.Get(ctx, "prod-1"))
	assert.Nil(t, svc.Get(ctx, "prod-2"))
	assert.NotNil(t, svc.Get(ctx, "prod-4"))
}

func TestBulkUpdateStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.BulkUpdateStatus(ctx, []string{"prod-1", "prod-4"}, product.StatusDraft))
	assert.Equal(t, product.StatusDraft, svc.Get(ctx, "prod-1").Status)
	assert.Equal(t, product.StatusDraft, svc.Get(ctx, "prod-4").Status)
	assert.Equal(t, product.StatusActive, svc.Get(ctx, "prod-2").Status)
}

// Export followed by import on an empty target reproduces the rows,
// allowing id regeneration.
func TestExportImportRoundTrip(t *testing.T) {
	source := newTestService(t)
	target := newTestService(t)
	ctx := context.Background()

	rows, err := source.Export(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	// Clear the target's seeded catalog first.
	var ids []string
	for _, p := range target.ListAll(ctx) {
		ids = append(ids, p.ID)
	}
	require.NoError(t, target.BulkDelete(ctx, ids))

	n, err := target.Import(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, len(rows), n)

	imported := target.ListAll(ctx)
	require.Len(t, imported, len(rows))

	byTitle := map[string]struct{ price float64; stock int; category string }{}
	for _, p := range source.ListAll(ctx) {
		byTitle[p.Title.En] = struct {
			price    float64
			stock    int
			category string
		}{p.Price, p.Stock, p.Category}
	}
	for _, p := range imported {
		want, ok := byTitle[p.Title.En]
		require.True(t, ok, "unexpected product %q", p.Title.En)
		assert.Equal(t, want.price, p.Price)
		assert.Equal(t, want.stock, p.Stock)
		assert.Equal(t, want.category, p.Category)
	}
}

// Import accepts camelCase rows too.
func TestImportCamelCaseRows(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	n, err := svc.Import(ctx, []store.Row{{
		"titleEn":  "Imported Cable",
		"titleSr":  "Uvezeni kabl",
		"price":    790.0,
		"category": "chargers",
		"status":   "active",
		"stock":    10,
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	found := false
	for _, p := range svc.List(ctx, Filters{Category: "chargers"}) {
		if p.Title.En == "Imported Cable" {
			found = true
			assert.Equal(t, 790.0, p.Price)
		}
	}
	assert.True(t, found)
}

func TestSalePercent(t *testing.T) {
	old := 2000.0
	p := product.Product{Price: 1500, OldPrice: &old}
	assert.Equal(t, 25, p.SalePercent())

	p.OldPrice = nil
	assert.Equal(t, 0, p.SalePercent())
}
