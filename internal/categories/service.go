package categories

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/category"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/i18n"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/util"
)

type Service struct {
	store store.Executor
	log   *logrus.Logger
}

func NewService(st store.Executor, log *logrus.Logger) *Service {
	return &Service{store: st, log: log}
}

// List returns categories ordered by display_order. With activeOnly set,
// only active ones.
func (s *Service) List(ctx context.Context, activeOnly *bool) []category.Category {
	var where []store.Cond
	if activeOnly != nil && *activeOnly {
		where = append(where, store.Eq("is_active", true))
	}
	rows, err := s.store.Exec(ctx, store.Select{
		Table:   store.TableCategories,
		Where:   where,
		OrderBy: "display_order",
	})
	if err != nil {
		s.log.WithError(err).Warn("categories: list failed")
		return []category.Category{}
	}
	return fromRows(rows)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) *category.Category {
	rows, err := s.store.Exec(ctx, store.Select{
		Table: store.TableCategories,
		Where: []store.Cond{store.Eq("slug", slug)},
	})
	if err != nil {
		s.log.WithError(err).WithField("slug", slug).Warn("categories: get by slug failed")
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	c := fromRow(rows[0])
	return &c
}

type CreateInput struct {
	Slug         string
	Name         i18n.Text
	Description  i18n.Text
	ParentID     *string
	IsActive     bool
	DisplayOrder int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (category.Category, error) {
	slug := in.Slug
	if slug == "" {
		slug = util.Slugify(in.Name.En)
	}
	row := store.Row{
		"slug":           slug,
		"name_sr":        in.Name.Sr,
		"name_en":        in.Name.En,
		"description_sr": in.Description.Sr,
		"description_en": in.Description.En,
		"parent_id":      nullableStr(in.ParentID),
		"is_active":      in.IsActive,
		"display_order":  in.DisplayOrder,
	}
	rows, err := s.store.Exec(ctx, store.InsertRow(store.TableCategories, store.CategoryFields.Columns(), row))
	if err != nil {
		return category.Category{}, fmt.Errorf("create category: %w", err)
	}
	if len(rows) == 0 {
		return category.Category{}, store.ErrNotFound
	}
	return fromRow(rows[0]), nil
}

type UpdateInput struct {
	Slug         *string
	Name         *i18n.Text
	Description  *i18n.Text
	ParentID     **string
	IsActive     *bool
	DisplayOrder *int
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (category.Category, error) {
	set := map[string]any{}
	if in.Slug != nil {
		set["slug"] = *in.Slug
	}
	if in.Name != nil {
		set["nameSr"] = in.Name.Sr
		set["nameEn"] = in.Name.En
	}
	if in.Description != nil {
		set["descriptionSr"] = in.Description.Sr
		set["descriptionEn"] = in.Description.En
	}
	if in.ParentID != nil {
		set["parentId"] = nullableStr(*in.ParentID)
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	if in.DisplayOrder != nil {
		set["displayOrder"] = *in.DisplayOrder
	}
	rows, err := s.store.Exec(ctx, store.PartialUpdate(store.TableCategories, store.CategoryFields, id, set))
	if err != nil {
		return category.Category{}, fmt.Errorf("update category %s: %w", id, err)
	}
	if len(rows) == 0 {
		return category.Category{}, store.ErrNotFound
	}
	return fromRow(rows[0]), nil
}

/// Delete removes a category. Children are kept and detached: their
// parent_id is nulled and updated_at stamped, nothing else is touched.
func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.store.Exec(ctx, store.Update{
		Table: store.TableCategories,
		Set:   []store.Assign{{Column: "parent_id", Value: nil}, store.StampNow()},
		Where: []store.Cond{store.Eq("parent_id", id)},
	})
	if err != nil {
		return fmt.Errorf("detach category children of %s: %w", id, err)
	}
	_, err = s.store.Exec(ctx, store.Delete{
		Table: store.TableCategories,
		Where: []store.Cond{store.Eq("id", id)},
	})
	if err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}

func nullableStr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func fromRows(rows []store.Row) []category.Category {
	out := make([]category.Category, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromRow(r))
	}
	return out
}

func fromRow(r store.Row) category.Category {
	return category.Category{
		ID:           r.Str("id"),
		Slug:         r.Str("slug"),
		Name:         i18n.Text{Sr: r.Str("name_sr"), En: r.Str("name_en")},
		Description:  i18n.Text{Sr: r.Str("description_sr"), En: r.Str("description_en")},
		ParentID:     r.StrPtr("parent_id"),
		IsActive:     r.Bool("is_active"),
		DisplayOrder: r.Int("display_order"),
		CreatedAt:    r.Time("created_at"),
		UpdatedAt:    r.Time("updated_at"),
	}
}
