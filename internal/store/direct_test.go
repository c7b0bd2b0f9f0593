package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDirectSelectThroughSQLClient(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	d := NewDirect(WrapSQL(db))

	rows := sqlmock.NewRows([]string{"id", "title_en", "price"}).
		AddRow("prod-1", "Silicone Case", 1490.0)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM products WHERE status = $1`)).
		WithArgs("active").
		WillReturnRows(rows)

	got, err := d.Exec(context.Background(), Select{
		Table: TableProducts,
		Where: []Cond{Eq("status", "active")},
	})
	if err != nil {
		t.Fatalf("exec failed: %v", err)
	}
	if len(got) != 1 || got[0].Str("id") != "prod-1" || got[0].Float("price") != 1490.0 {
		t.Fatalf("unexpected rows: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDirectInsertReturnsRow(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	d := NewDirect(WrapSQL(db))

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories (slug, name_en) VALUES ($1, $2) RETURNING *`)).
		WithArgs("chargers", "Chargers").
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "name_en"}).
			AddRow("cat-9", "chargers", "Chargers"))

	got, err := d.Exec(context.Background(), Insert{
		Table:   TableCategories,
		Columns: []string{"slug", "name_en"},
		Values:  []any{"chargers", "Chargers"},
	})
	if err != nil {
		t.Fatalf("exec failed: %v", err)
	}
	if len(got) != 1 || got[0].Str("id") != "cat-9" {
		t.Fatalf("unexpected rows: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Byte-slice columns (how database/sql hands back text) decode to strings.
func TestSQLClientConvertsBytes(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM categories`)).
		WillReturnRows(sqlmock.NewRows([]string{"slug"}).AddRow([]byte("phone-cases")))

	rows, err := WrapSQL(db).Query(context.Background(), "SELECT * FROM categories")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if rows[0].Str("slug") != "phone-cases" {
		t.Fatalf("unexpected value: %+v", rows[0])
	}
}
