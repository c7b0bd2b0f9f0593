package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/util"
)

// File names mirror the browser storage keys the collections originated
// from.
const (
	productsFile   = "mockProducts.json"
	categoriesFile = "mockCategories.json"
)

// Local emulates a minimal relational backend over two durable collections
// (products, categories) so the shop keeps working while the real backend
// is unreachable. All operations funnel through a single-writer goroutine,
// which serializes the read-modify-write-persist cycle; two concurrent
// updates of the same row can no longer lose one of the writes.
//
// Commands against any other table fail with ErrUnsupported rather than
// returning an empty list, so "backend cannot run this" never masquerades
// as "no results".
type Local struct {
	dir string
	log *logrus.Logger

	reqs chan localReq
	done chan struct{}
}

type localReq struct {
	cmd   Command  // execute a command
	sync  *syncOp  // replay a remote write result
	reset bool     // clear and reseed both collections
	reply chan localResp
}

type syncOp struct {
	cmd  Command
	rows []Row
}

type localResp struct {
	rows []Row
	err  error
}

func NewLocal(dir string, log *logrus.Logger) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("local store dir: %w", err)
	}
	s := &Local{
		dir:  dir,
		log:  log,
		reqs: make(chan localReq),
		done: make(chan struct{}),
	}
	products, err := s.loadOrSeed(productsFile, SeedProducts)
	if err != nil {
		return nil, err
	}
	categories, err := s.loadOrSeed(categoriesFile, SeedCategories)
	if err != nil {
		return nil, err
	}
	go s.run(products, categories)
	return s, nil
}

func (s *Local) Close() { close(s.done) }

func (s *Local) Exec(ctx context.Context, cmd Command) ([]Row, error) {
	resp, err := s.send(ctx, localReq{cmd: cmd})
	if err != nil {
		return nil, err
	}
	return resp.rows, resp.err
}

// Sync replays rows returned by a successful remote write so that
// subsequent fallback reads see the last known remote state.
func (s *Local) Sync(ctx context.Context, cmd Command, rows []Row) {
	table := TableOf(cmd)
	if table != TableProducts && table != TableCategories {
		return
	}
	_, _ = s.send(ctx, localReq{sync: &syncOp{cmd: cmd, rows: rows}})
}

// Reset clears both collections and reseeds the fixtures.
func (s *Local) Reset(ctx context.Context) error {
	resp, err := s.send(ctx, localReq{reset: true})
	if err != nil {
		return err
	}
	return resp.err
}

func (s *Local) send(ctx context.Context, req localReq) (localResp, error) {
	req.reply = make(chan localResp, 1)
	select {
	case s.reqs <- req:
	case <-ctx.Done():
		return localResp{}, ctx.Err()
	case <-s.done:
		return localResp{}, ErrStorageUnavailable
	}
	select {
	case resp := <-req.reply:
		return resp, nil
	case <-ctx.Done():
		return localResp{}, ctx.Err()
	}
}

// run owns the collections. Only this goroutine touches them.
func (s *Local) run(products, categories []Row) {
	state := map[string][]Row{
		TableProducts:   products,
		TableCategories: categories,
	}
	for {
		select {
		case <-s.done:
			return
		case req := <-s.reqs:
			var resp localResp
			switch {
			case req.reset:
				resp.err = s.doReset(state)
			case req.sync != nil:
				s.doSync(state, req.sync)
			default:
				resp.rows, resp.err = s.dispatch(state, req.cmd)
			}
			req.reply <- resp
		}
	}
}

func (s *Local) dispatch(state map[string][]Row, cmd Command) ([]Row, error) {
	rows, ok := state[TableOf(cmd)]
	if !ok {
		return nil, fmt.Errorf("%w: table %s not emulated", ErrUnsupported, TableOf(cmd))
	}
	switch c := cmd.(type) {
	case Select:
		return execSelect(rows, c), nil
	case Insert:
		row, err := execInsert(&rows, c)
		if err != nil {
			return nil, err
		}
		state[c.Table] = rows
		return []Row{row}, s.persist(c.Table, rows)
	case Update:
		updated := execUpdate(rows, c)
		return updated, s.persist(c.Table, rows)
	case Delete:
		removed := execDelete(&rows, c)
		state[c.Table] = rows
		return removed, s.persist(c.Table, rows)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, cmd)
	}
}

func execSelect(rows []Row, c Select) []Row {
	out := []Row{}
	for _, r := range rows {
		if matches(r, c.Where) {
			out = append(out, r.Clone())
		}
	}
	if c.OrderBy != "" {
		orderBy := c.OrderBy
		desc := c.Desc
		sort.SliceStable(out, func(i, j int) bool {
			var less bool
			if orderBy == "created_at" || orderBy == "updated_at" {
				less = out[i].Time(orderBy).Before(out[j].Time(orderBy))
			} else {
				less = out[i].Float(orderBy) < out[j].Float(orderBy)
			}
			if desc {
				return !less
			}
			return less
		})
	}
	// Limit slices the already-filtered list, applied last.
	if c.Limit > 0 && len(out) > c.Limit {
		out = out[:c.Limit]
	}
	return out
}

func execInsert(rows *[]Row, c Insert) (Row, error) {
	if len(c.Columns) != len(c.Values) {
		return nil, fmt.Errorf("insert into %s: column/value count mismatch", c.Table)
	}
	row := make(Row, len(c.Columns)+3)
	for i, col := range c.Columns {
		row[col] = c.Values[i]
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if row.Str("id") == "" {
		row["id"] = util.NewID()
	}
	if _, ok := row["created_at"]; !ok {
		row["created_at"] = now
	}
	if _, ok := row["updated_at"]; !ok {
		row["updated_at"] = now
	}
	*rows = append(*rows, row)
	return row.Clone(), nil
}

func execUpdate(rows []Row, c Update) []Row {
	updated := []Row{}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range rows {
		if !matches(r, c.Where) {
			continue
		}
		for _, a := range c.Set {
			r[a.Column] = a.Value
		}
		r["updated_at"] = now
		updated = append(updated, r.Clone())
	}
	return updated
}

func execDelete(rows *[]Row, c Delete) []Row {
	removed := []Row{}
	kept := (*rows)[:0]
	for _, r := range *rows {
		if matches(r, c.Where) {
			removed = append(removed, r)
		} else {
			kept = append(kept, r)
		}
	}
	*rows = kept
	return removed
}

// matches applies predicates in order; all must hold.
func matches(r Row, where []Cond) bool {
	for _, w := range where {
		if w.In != nil {
			found := false
			for _, v := range w.In {
				if looseEq(r[w.Column], v) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
			continue
		}
		if !looseEq(r[w.Column], w.Value) {
			return false
		}
	}
	return true
}

// looseEq compares across the value encodings the two backends produce
// (JSON numbers are float64, Postgres integers are int64, and so on).
func looseEq(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	}
	switch a.(type) {
	case int, int32, int64, float32, float64:
		switch b.(type) {
		case int, int32, int64, float32, float64:
			return Row{"a": a}.Float("a") == Row{"b": b}.Float("b")
		}
	}
	return a == b
}

func (s *Local) doSync(state map[string][]Row, op *syncOp) {
	table := TableOf(op.cmd)
	rows := state[table]
	switch op.cmd.(type) {
	case Insert, Update:
		for _, remote := range op.rows {
			id := remote.Str("id")
			replaced := false
			for i, r := range rows {
				if r.Str("id") == id {
					rows[i] = remote.Clone()
					replaced = true
					break
				}
			}
			if !replaced {
				rows = append(rows, remote.Clone())
			}
		}
	case Delete:
		for _, remote := range op.rows {
			id := remote.Str("id")
			for i, r := range rows {
				if r.Str("id") == id {
					rows = append(rows[:i], rows[i+1:]...)
					break
				}
			}
		}
	}
	state[table] = rows
	if err := s.persist(table, rows); err != nil {
		s.log.WithError(err).Warn("local store: sync persist failed")
	}
}

func (s *Local) doReset(state map[string][]Row) error {
	state[TableProducts] = SeedProducts()
	state[TableCategories] = SeedCategories()
	if err := s.persist(TableProducts, state[TableProducts]); err != nil {
		return err
	}
	return s.persist(TableCategories, state[TableCategories])
}

func (s *Local) persist(table string, rows []Row) error {
	file := productsFile
	if table == TableCategories {
		file = categoriesFile
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, file), data, 0o644)
}

func (s *Local) loadOrSeed(file string, seed func() []Row) ([]Row, error) {
	path := filepath.Join(s.dir, file)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		rows := seed()
		out, merr := json.Marshal(rows)
		if merr != nil {
			return nil, merr
		}
		if werr := os.WriteFile(path, out, 0o644); werr != nil {
			return nil, werr
		}
		return rows, nil
	}
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		s.log.WithField("file", file).Warn("local store: corrupt collection, reseeding")
		return seed(), nil
	}
	return rows, nil
}
