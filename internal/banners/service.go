package banners

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/banner"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/i18n"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
)

type Service struct {
	store store.Executor
	log   *logrus.Logger
}

func NewService(st store.Executor, log *logrus.Logger) *Service {
	return &Service{store: st, log: log}
}

// List returns banners for a position ordered by display_order. Empty
// position lists everything; activeOnly narrows to active banners.
func (s *Service) List(ctx context.Context, position string, activeOnly *bool) []banner.Banner {
	var where []store.Cond
	if position != "" {
		where = append(where, store.Eq("position", position))
	}
	if activeOnly != nil && *activeOnly {
		where = append(where, store.Eq("is_active", true))
	}
	rows, err := s.store.Exec(ctx, store.Select{
		Table:   store.TableBanners,
		Where:   where,
		OrderBy: "display_order",
	})
	if err != nil {
		s.log.WithError(err).Warn("banners: list failed")
		return []banner.Banner{}
	}
	return fromRows(rows)
}

func (s *Service) Get(ctx context.Context, id string) *banner.Banner {
	rows, err := s.store.Exec(ctx, store.Select{
		Table: store.TableBanners,
		Where: []store.Cond{store.Eq("id", id)},
	})
	if err != nil {
		s.log.WithError(err).WithField("id", id).Warn("banners: get failed")
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	b := fromRow(rows[0])
	return &b
}

type CreateInput struct {
	Title           i18n.Text
	Description     i18n.Text
	Image           string
	TargetURL       string
	IsActive        bool
	Position        string
	DisplayOrder    int
	DiscountPercent *float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (banner.Banner, error) {
	if !banner.ValidPosition(in.Position) {
		return banner.Banner{}, fmt.Errorf("unknown banner position %q", in.Position)
	}
	row := store.Row{
		"title_sr":         in.Title.Sr,
		"title_en":         in.Title.En,
		"description_sr":   in.Description.Sr,
		"description_en":   in.Description.En,
		"image":            in.Image,
		"target_url":       in.TargetURL,
		"is_active":        in.IsActive,
		"position":         in.Position,
		"display_order":    in.DisplayOrder,
		"discount_percent": nullable(in.DiscountPercent),
	}
	rows, err := s.store.Exec(ctx, store.InsertRow(store.TableBanners, store.BannerFields.Columns(), row))
	if err != nil {
		return banner.Banner{}, fmt.Errorf("create banner: %w", err)
	}
	if len(rows) == 0 {
		return banner.Banner{}, store.ErrNotFound
	}
	return fromRow(rows[0]), nil
}

type UpdateInput struct {
	Title           *i18n.Text
	Description     *i18n.Text
	Image           *string
	TargetURL       *string
	IsActive        *bool
	Position        *string
	DisplayOrder    *int
	DiscountPercent **float64
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (banner.Banner, error) {
	set := map[string]any{}
	if in.Title != nil {
		set["titleSr"] = in.Title.Sr
		set["titleEn"] = in.Title.En
	}
	if in.Description != nil {
		set["descriptionSr"] = in.Description.Sr
		set["descriptionEn"] = in.Description.En
	}
	if in.Image != nil {
		set["image"] = *in.Image
	}
	if in.TargetURL != nil {
		set["targetUrl"] = *in.TargetURL
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	if in.Position != nil {
		if !banner.ValidPosition(*in.Position) {
			return banner.Banner{}, fmt.Errorf("unknown banner position %q", *in.Position)
		}
		set["position"] = *in.Position
	}
	if in.DisplayOrder != nil {
		set["displayOrder"] = *in.DisplayOrder
	}
	if in.DiscountPercent != nil {
		set["discountPercent"] = nullable(*in.DiscountPercent)
	}
	rows, err := s.store.Exec(ctx, store.PartialUpdate(store.TableBanners, store.BannerFields, id, set))
	if err != nil {
		return banner.Banner{}, fmt.Errorf("update banner %s: %w", id, err)
	}
	if len(rows) == 0 {
		return banner.Banner{}, store.ErrNotFound
	}
	return fromRow(rows[0]), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.store.Exec(ctx, store.Delete{
		Table: store.TableBanners,
		Where: []store.Cond{store.Eq("id", id)},
	})
	if err != nil {
		return fmt.Errorf("delete banner %s: %w", id, err)
	}
	return nil
}

// Move shifts a banner one step up or down inside its position by
// swapping display_order values with the adjacent banner. At the edge it
// is a no-op.
func (s *Service) Move(ctx context.Context, id string, up bool) error {
	target := s.Get(ctx, id)
	if target == nil {
		return store.ErrNotFound
	}
	siblings := s.List(ctx, target.Position, nil)

	idx := -1
	for i, b := range siblings {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return store.ErrNotFound
	}
	swap := idx + 1
	if up {
		swap = idx - 1
	}
	if swap < 0 || swap >= len(siblings) {
		return nil
	}

	a, b := siblings[idx], siblings[swap]
	if _, err := s.setOrder(ctx, a.ID, b.DisplayOrder); err != nil {
		return err
	}
	if _, err := s.setOrder(ctx, b.ID, a.DisplayOrder); err != nil {
		return err
	}
	return nil
}

func (s *Service) setOrder(ctx context.Context, id string, order int) (banner.Banner, error) {
	return s.Update(ctx, id, UpdateInput{DisplayOrder: &order})
}

func nullable(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func fromRows(rows []store.Row) []banner.Banner {
	out := make([]banner.Banner, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromRow(r))
	}
	return out
}

func fromRow(r store.Row) banner.Banner {
	return banner.Banner{
		ID:              r.Str("id"),
		Title:           i18n.Text{Sr: r.Str("title_sr"), En: r.Str("title_en")},
		Description:     i18n.Text{Sr: r.Str("description_sr"), En: r.Str("description_en")},
		Image:           r.Str("image"),
		TargetURL:       r.Str("target_url"),
		IsActive:        r.Bool("is_active"),
		Position:        r.Str("position"),
		DisplayOrder:    r.Int("display_order"),
		DiscountPercent: r.FloatPtr("discount_percent"),
		CreatedAt:       r.Time("created_at"),
		UpdatedAt:       r.Time("updated_at"),
	}
}
