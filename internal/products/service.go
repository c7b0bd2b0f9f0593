package products

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/i18n"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/product"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
)

type Service struct {
	store store.Executor
	log   *logrus.Logger
}

func NewService(st store.Executor, log *logrus.Logger) *Service {
	return &Service{store: st, log: log}
}

// Filters for the storefront product listing. Status is always the first
// predicate and defaults to active, so draft products never leak into the
// shop.
type Filters struct {
	Status   string
	Category string
	OnSale   *bool
	New      *bool
	Limit    int
}

// List returns the filtered products. Read failures degrade to an empty
// list; the storefront renders "no products" instead of an error page.
func (s *Service) List(ctx context.Context, f Filters) []product.Product {
	status := f.Status
	if status == "" {
		status = product.StatusActive
	}
	where := []store.Cond{store.Eq("status", status)}
	if f.Category != "" {
		where = append(where, store.Eq("category", f.Category))
	}
	if f.OnSale != nil {
		where = append(where, store.Eq("is_on_sale", *f.OnSale))
	}
	if f.New != nil {
		where = append(where, store.Eq("is_new", *f.New))
	}

	rows, err := s.store.Exec(ctx, store.Select{
		Table: store.TableProducts,
		Where: where,
		Limit: f.Limit,
	})
	if err != nil {
		s.log.WithError(err).Warn("products: list failed")
		return []product.Product{}
	}
	return fromRows(rows)
}

// ListAll is the admin listing, newest first.
func (s *Service) ListAll(ctx context.Context) []product.Product {
	rows, err := s.store.Exec(ctx, store.Select{
		Table:   store.TableProducts,
		OrderBy: "created_at",
		Desc:    true,
	})
	if err != nil {
		s.log.WithError(err).Warn("products: admin list failed")
		return []product.Product{}
	}
	return fromRows(rows)
}

// Get returns nil when the product is missing or the read failed.
func (s *Service) Get(ctx context.Context, id string) *product.Product {
	rows, err := s.store.Exec(ctx, store.Select{
		Table: store.TableProducts,
		Where: []store.Cond{store.Eq("id", id)},
	})
	if err != nil {
		s.log.WithError(err).WithField("id", id).Warn("products: get failed")
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	p := fromRow(rows[0])
	return &p
}

// GetByIDs resolves an id list (cart hydration).
func (s *Service) GetByIDs(ctx context.Context, ids []string) []product.Product {
	if len(ids) == 0 {
		return []product.Product{}
	}
	in := make([]any, len(ids))
	for i, id := range ids {
		in[i] = id
	}
	rows, err := s.store.Exec(ctx, store.Select{
		Table: store.TableProducts,
		Where: []store.Cond{store.InList("id", in)},
	})
	if err != nil {
		s.log.WithError(err).Warn("products: get by ids failed")
		return []product.Product{}
	}
	return fromRows(rows)
}

type CreateInput struct {
	Title       i18n.Text
	Price       float64
	OldPrice    *float64
	Category    string
	Stock       int
	Status      string
	IsNew       bool
	IsOnSale    bool
	Description i18n.Text
	Image       string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (product.Product, error) {
	status := in.Status
	if status == "" {
		status = product.StatusActive
	}
	row := store.Row{
		"title_sr":       in.Title.Sr,
		"title_en":       in.Title.En,
		"price":          in.Price,
		"old_price":      nullable(in.OldPrice),
		"category":       in.Category,
		"stock":          in.Stock,
		"status":         status,
		"is_new":         in.IsNew,
		"is_on_sale":     in.IsOnSale,
		"description_sr": in.Description.Sr,
		"description_en": in.Description.En,
		"image":          in.Image,
	}
	rows, err := s.store.Exec(ctx, store.InsertRow(store.TableProducts, store.ProductFields.Columns(), row))
	if err != nil {
		return product.Product{}, fmt.Errorf("create product: %w", err)
	}
	if len(rows) == 0 {
		return product.Product{}, store.ErrNotFound
	}
	return fromRow(rows[0]), nil
}

// UpdateInput carries only the touched fields. nil leaves a field alone; a
// pointer to the zero value clears it.
type UpdateInput struct {
	Title       *i18n.Text
	Price       *float64
	OldPrice    **float64
	Category    *string
	Stock       *int
	Status      *string
	IsNew       *bool
	IsOnSale    *bool
	Description *i18n.Text
	Image       *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (product.Product, error) {
	set := map[string]any{}
	if in.Title != nil {
		set["titleSr"] = in.Title.Sr
		set["titleEn"] = in.Title.En
	}
	if in.Price != nil {
		set["price"] = *in.Price
	}
	if in.OldPrice != nil {
		set["oldPrice"] = nullable(*in.OldPrice)
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Stock != nil {
		set["stock"] = *in.Stock
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.IsNew != nil {
		set["isNew"] = *in.IsNew
	}
	if in.IsOnSale != nil {
		set["isOnSale"] = *in.IsOnSale
	}
	if in.Description != nil {
		set["descriptionSr"] = in.Description.Sr
		set["descriptionEn"] = in.Description.En
	}
	if in.Image != nil {
		set["image"] = *in.Image
	}

	cmd := store.PartialUpdate(store.TableProducts, store.ProductFields, id, set)
	rows, err := s.store.Exec(ctx, cmd)
	if err != nil {
		return product.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}
	if len(rows) == 0 {
		return product.Product{}, store.ErrNotFound
	}
	return fromRow(rows[0]), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.store.Exec(ctx, store.Delete{
		Table: store.TableProducts,
		Where: []store.Cond{store.Eq("id", id)},
	})
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

// BulkDelete removes every listed product in one statement. An empty id
// list is a successful no-op.
func (s *Service) BulkDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	in := make([]any, len(ids))
	for i, id := range ids {
		in[i] = id
	}
	_, err := s.store.Exec(ctx, store.Delete{
		Table: store.TableProducts,
		Where: []store.Cond{store.InList("id", in)},
	})
	if err != nil {
		return fmt.Errorf("bulk delete products: %w", err)
	}
	return nil
}

func (s *Service) BulkUpdateStatus(ctx context.Context, ids []string, status string) error {
	if len(ids) == 0 {
		return nil
	}
	in := make([]any, len(ids))
	for i, id := range ids {
		in[i] = id
	}
	_, err := s.store.Exec(ctx, store.Update{
		Table: store.TableProducts,
		Set:   []store.Assign{{Column: "status", Value: status}, store.StampNow()},
		Where: []store.Cond{store.InList("id", in)},
	})
	if err != nil {
		return fmt.Errorf("bulk update product status: %w", err)
	}
	return nil
}

// Export returns every product as storage-column rows, the shape the
// settings page downloads as a .json attachment.
func (s *Service) Export(ctx context.Context) ([]store.Row, error) {
	rows, err := s.store.Exec(ctx, store.Select{Table: store.TableProducts})
	if err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	return rows, nil
}

// Import inserts the given rows, accepting either naming convention for
// the keys. Ids are regenerated; counts of imported rows are returned.
func (s *Service) Import(ctx context.Context, rows []store.Row) (int, error) {
	imported := 0
	for _, raw := range rows {
		row := store.ProductFields.NormalizeRow(raw)
		delete(row, "id")
		delete(row, "created_at")
		delete(row, "updated_at")
		_, err := s.store.Exec(ctx, store.InsertRow(store.TableProducts, store.ProductFields.Columns(), row))
		if err != nil {
			return imported, fmt.Errorf("import products: %w", err)
		}
		imported++
	}
	return imported, nil
}

func nullable(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func fromRows(rows []store.Row) []product.Product {
	out := make([]product.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromRow(r))
	}
	return out
}

func fromRow(r store.Row) product.Product {
	return product.Product{
		ID:          r.Str("id"),
		Title:       i18n.Text{Sr: r.Str("title_sr"), En: r.Str("title_en")},
		Price:       r.Float("price"),
		OldPrice:    r.FloatPtr("old_price"),
		Category:    r.Str("category"),
		Stock:       r.Int("stock"),
		Status:      r.Str("status"),
		IsNew:       r.Bool("is_new"),
		IsOnSale:    r.Bool("is_on_sale"),
		Description: i18n.Text{Sr: r.Str("description_sr"), En: r.Str("description_en")},
		Image:       r.Str("image"),
		CreatedAt:   r.Time("created_at"),
		UpdatedAt:   r.Time("updated_at"),
	}
}
