package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Client is a server-side database connection able to run one statement.
// Two implementations exist in parallel: PgxClient (the managed pool) and
// SQLClient (the generic database/sql wrapper).
type Client interface {
	Query(ctx context.Context, query string, args ...any) ([]Row, error)
	Close()
}

// Direct executes commands straight against an injected client. The client
// is constructed once at startup and passed in; there is no lazily built
// package-level pool.
type Direct struct {
	client Client
}

func NewDirect(client Client) *Direct {
	return &Direct{client: client}
}

func (d *Direct) Exec(ctx context.Context, cmd Command) ([]Row, error) {
	query, args, err := BuildSQL(cmd)
	if err != nil {
		return nil, err
	}
	return d.client.Query(ctx, query, args...)
}

// Raw runs an already-rendered statement. Used by the /api/db endpoint,
// which receives query text from remote callers.
func (d *Direct) Raw(ctx context.Context, query string, args ...any) ([]Row, error) {
	return d.client.Query(ctx, query, args...)
}

type PgxClient struct {
	pool *pgxpool.Pool
}

func NewPgxClient(ctx context.Context, databaseURL string) (*PgxClient, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PgxClient{pool: pool}, nil
}

func (c *PgxClient) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := []Row{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		r := make(Row, len(fields))
		for i, f := range fields {
			r[string(f.Name)] = values[i]
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (c *PgxClient) Close() { c.pool.Close() }

type SQLClient struct {
	db *sql.DB
}

// NewSQLClient opens a database/sql handle. The caller registers the driver
// (lib/pq in cmd/api).
func NewSQLClient(driver, dsn string) (*SQLClient, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLClient{db: db}, nil
}

// WrapSQL wraps an existing handle (tests inject sqlmock this way).
func WrapSQL(db *sql.DB) *SQLClient {
	return &SQLClient{db: db}
}

func (c *SQLClient) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	out := []Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		r := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				r[col] = string(b)
			} else {
				r[col] = values[i]
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (c *SQLClient) Close() { c.db.Close() }
