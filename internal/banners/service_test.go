package banners

import (
	"context"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/banner"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/i18n"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/util"
)

// memExec is a minimal in-memory banners table; the emulation store only
// carries products and categories, so reorder tests bring their own rows.
type memExec struct {
	rows []store.Row
}

func (m *memExec) Exec(_ context.Context, cmd store.Command) ([]store.Row, error) {
	switch c := cmd.(type) {
	case store.Select:
		out := []store.Row{}
		for _, r := range m.rows {
			if m.matches(r, c.Where) {
				out = append(out, r.Clone())
			}
		}
		if c.OrderBy != "" {
			sort.SliceStable(out, func(i, j int) bool {
				return out[i].Float(c.OrderBy) < out[j].Float(c.OrderBy)
			})
		}
		return out, nil
	case store.Insert:
		row := store.Row{"id": util.NewID()}
		for i, col := range c.Columns {
			row[col] = c.Values[i]
		}
		m.rows = append(m.rows, row)
		return []store.Row{row.Clone()}, nil
	case store.Update:
		out := []store.Row{}
		for _, r := range m.rows {
			if m.matches(r, c.Where) {
				for _, a := range c.Set {
					r[a.Column] = a.Value
				}
				out = append(out, r.Clone())
			}
		}
		return out, nil
	case store.Delete:
		out := []store.Row{}
		kept := m.rows[:0]
		for _, r := range m.rows {
			if m.matches(r, c.Where) {
				out = append(out, r)
			} else {
				kept = append(kept, r)
			}
		}
		m.rows = kept
		return out, nil
	}
	return nil, store.ErrUnsupported
}

func (m *memExec) matches(r store.Row, where []store.Cond) bool {
	for _, w := range where {
		if r[w.Column] != w.Value {
			return false
		}
	}
	return true
}

func newTestService(t *testing.T) (*Service, *memExec) {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	exec := &memExec{}
	return NewService(exec, log), exec
}

func seedHero(t *testing.T, svc *Service) (a, b, c banner.Banner) {
	t.Helper()
	ctx := context.Background()
	var err error
	a, err = svc.Create(ctx, CreateInput{
		Title: i18n.Text{En: "A"}, Position: banner.PositionHero, DisplayOrder: 1, IsActive: true,
	})
	require.NoError(t, err)
	b, err = svc.Create(ctx, CreateInput{
		Title: i18n.Text{En: "B"}, Position: banner.PositionHero, DisplayOrder: 2, IsActive: true,
	})
	require.NoError(t, err)
	c, err = svc.Create(ctx, CreateInput{
		Title: i18n.Text{En: "C"}, Position: banner.PositionHero, DisplayOrder: 3, IsActive: true,
	})
	require.NoError(t, err)
	return a, b, c
}

// Two pairwise swaps starting from [A,B,C]: move B up, then C up, ends
// in sequence [B,C,A] — the swap logic composes under repetition.
func TestMoveComposes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, b, c := seedHero(t, svc)

	require.NoError(t, svc.Move(ctx, b.ID, true))
	require.NoError(t, svc.Move(ctx, c.ID, true))

	got := svc.List(ctx, banner.PositionHero, nil)
	require.Len(t, got, 3)
	assert.Equal(t, "B", got[0].Title.En)
	assert.Equal(t, "C", got[1].Title.En)
	assert.Equal(t, "A", got[2].Title.En)
}

func TestMoveAtEdgeIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	a, _, c := seedHero(t, svc)

	require.NoError(t, svc.Move(ctx, a.ID, true))
	require.NoError(t, svc.Move(ctx, c.ID, false))

	got := svc.List(ctx, banner.PositionHero, nil)
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].Title.En)
	assert.Equal(t, "C", got[2].Title.En)
}

func TestMoveMissingBanner(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Error(t, svc.Move(context.Background(), "nope", true))
}

func TestListScopedByPosition(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	seedHero(t, svc)

	pct := 15.0
	_, err := svc.Create(ctx, CreateInput{
		Title: i18n.Text{En: "Promo"}, Position: banner.PositionPromo,
		DisplayOrder: 1, IsActive: true, DiscountPercent: &pct,
	})
	require.NoError(t, err)

	hero := svc.List(ctx, banner.PositionHero, nil)
	assert.Len(t, hero, 3)
	promo := svc.List(ctx, banner.PositionPromo, nil)
	require.Len(t, promo, 1)
	require.NotNil(t, promo[0].DiscountPercent)
	assert.Equal(t, 15.0, *promo[0].DiscountPercent)
}

func TestCreateRejectsUnknownPosition(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Create(context.Background(), CreateInput{
		Title: i18n.Text{En: "X"}, Position: "sidebar",
	})
	assert.Error(t, err)
}
