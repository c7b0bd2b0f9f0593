package store

import (
	"context"
	"errors"
	"strconv"
	"time"
)

var (
	// ErrStorageUnavailable means the configured backend could not be constructed.
	ErrStorageUnavailable = errors.New("storage backend unavailable")

	// ErrUnsupported means a command cannot be executed by this backend
	// (e.g. the emulation store only carries products and categories).
	ErrUnsupported = errors.New("unsupported storage command")

	ErrNotFound = errors.New("row not found")
)

// Table names used across the application.
const (
	TableProducts   = "products"
	TableCategories = "categories"
	TableOrders     = "orders"
	TableCustomers  = "customers"
	TableBanners    = "banners"
)

// Row is one storage row, keyed by column name.
type Row map[string]any

// Executor runs typed commands against some backend and returns the
// resulting rows. Implemented by Direct, Remote and Local.
type Executor interface {
	Exec(ctx context.Context, cmd Command) ([]Row, error)
}

func (r Row) Str(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case nil:
		return ""
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return ""
	}
}

func (r Row) Float(col string) float64 {
	switch v := r[col].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

func (r Row) Int(col string) int {
	return int(r.Float(col))
}

func (r Row) Bool(col string) bool {
	switch v := r[col].(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "t"
	default:
		return false
	}
}

// Time parses a timestamp column. Rows coming from Postgres carry
// time.Time values, rows from the emulation store carry RFC3339 strings.
func (r Row) Time(col string) time.Time {
	switch v := r[col].(type) {
	case time.Time:
		return v
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}
		}
		return t
	default:
		return time.Time{}
	}
}

// FloatPtr returns nil for NULL / absent columns.
func (r Row) FloatPtr(col string) *float64 {
	if v, ok := r[col]; !ok || v == nil {
		return nil
	}
	f := r.Float(col)
	return &f
}

// StrPtr returns nil for NULL / absent columns.
func (r Row) StrPtr(col string) *string {
	if v, ok := r[col]; !ok || v == nil {
		return nil
	}
	s := r.Str(col)
	return &s
}

// Clone returns a shallow copy so callers cannot mutate backend state.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
