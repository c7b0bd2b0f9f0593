package categories

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/i18n"
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

func TestListOrderedByDisplayOrder(t *testing.T) {
	svc := newTestService(t)

	items := svc.List(context.Background(), nil)
	require.NotEmpty(t, items)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].DisplayOrder, items[i].DisplayOrder)
	}
}

func TestGetBySlug(t *testing.T) {
	svc := newTestService(t)

	cat := svc.GetBySlug(context.Background(), "phone-cases")
	require.NotNil(t, cat)
	assert.Equal(t, "Maske za telefone", cat.Name.Sr)

	assert.Nil(t, svc.GetBySlug(context.Background(), "no-such-slug"))
}

func TestCreateSlugsFromName(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), CreateInput{
		Name:     i18n.Text{Sr: "Držači za kola", En: "Car Holders"},
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "car-holders", created.Slug)
}

// Deleting a parent detaches its children: parent_id becomes null, the
// update timestamp moves, everything else stays.
func TestDeleteParentDetachesChildren(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	parent, err := svc.Create(ctx, CreateInput{
		Slug: "accessories", Name: i18n.Text{En: "Accessories"}, IsActive: true,
	})
	require.NoError(t, err)
	child, err := svc.Create(ctx, CreateInput{
		Slug: "cables", Name: i18n.Text{En: "Cables"}, ParentID: &parent.ID,
		IsActive: true, DisplayOrder: 9,
	})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)

	require.NoError(t, svc.Delete(ctx, parent.ID))

	assert.Nil(t, svc.GetBySlug(ctx, "accessories"))
	got := svc.GetBySlug(ctx, "cables")
	require.NotNil(t, got)
	assert.Nil(t, got.ParentID)
	assert.Equal(t, child.Name, got.Name)
	assert.Equal(t, child.DisplayOrder, got.DisplayOrder)
	assert.True(t, got.UpdatedAt.After(child.UpdatedAt) || got.UpdatedAt.Equal(child.UpdatedAt))
}

func TestActiveOnlyFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inactive := false
	_, err := svc.Create(ctx, CreateInput{
		Slug: "archived", Name: i18n.Text{En: "Archived"}, IsActive: inactive,
	})
	require.NoError(t, err)

	active := true
	for _, c := range svc.List(ctx, &active) {
		assert.True(t, c.IsActive)
	}
}
