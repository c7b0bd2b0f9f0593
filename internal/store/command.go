package store

// The storage layer speaks a small typed command vocabulary instead of raw
// SQL text. Commands are rendered to parameterized SQL only at the real
// backend boundary (see sqlgen.go); the emulation store executes them
// directly against its collections.

// Cond is one WHERE predicate. Equality when In is nil, IN-list membership
// otherwise. Predicates apply in the order they appear.
type Cond struct {
	Column string
	Value  any
	In     []any
}

// Eq builds an equality predicate.
func Eq(column string, value any) Cond {
	return Cond{Column: column, Value: value}
}

// InList builds an IN-list membership predicate.
func InList(column string, values []any) Cond {
	return Cond{Column: column, In: values}
}

// Assign is one SET assignment of an UPDATE.
type Assign struct {
	Column string
	Value  any
}

// Command is a typed storage operation.
type Command interface {
	table() string
	mutating() bool
}

type Select struct {
	Table   string
	Where   []Cond
	OrderBy string
	Desc    bool
	Limit   int
}

// Insert inserts one row. Columns and Values are zipped positionally.
// Backends fill id, created_at and updated_at when absent and return the
// inserted row.
type Insert struct {
	Table   string
	Columns []string
	Values  []any
}

// Update applies Set, in order, to every row matching Where, stamps
// updated_at and returns the updated rows.
type Update struct {
	Table string
	Set   []Assign
	Where []Cond
}

// Delete removes matching rows and returns them (empty when absent).
type Delete struct {
	Table string
	Where []Cond
}

func (c Select) table() string { return c.Table }
func (c Insert) table() string { return c.Table }
func (c Update) table() string { return c.Table }
func (c Delete) table() string { return c.Table }

func (c Select) mutating() bool { return false }
func (c Insert) mutating() bool { return true }
func (c Update) mutating() bool { return true }
func (c Delete) mutating() bool { return true }

// Mutating reports whether cmd is a write (INSERT/UPDATE/DELETE).
func Mutating(cmd Command) bool { return cmd.mutating() }

// TableOf returns the table a command targets.
func TableOf(cmd Command) string { return cmd.table() }

// InsertRow builds an Insert from a row map using the given column order.
// Columns absent from the row are skipped, keeping the zip positional.
func InsertRow(table string, columns []string, row Row) Insert {
	ins := Insert{Table: table}
	for _, col := range columns {
		v, ok := row[col]
		if !ok {
			continue
		}
		ins.Columns = append(ins.Columns, col)
		ins.Values = append(ins.Values, v)
	}
	return ins
}
