package store

import (
	"fmt"
	"strings"
)

// BuildSQL renders a command to a positional-placeholder statement plus its
// parameter list. This is the only place SQL text is produced; mutating
// statements carry RETURNING * so every backend hands rows back uniformly.
func BuildSQL(cmd Command) (string, []any, error) {
	switch c := cmd.(type) {
	case Select:
		return buildSelect(c)
	case Insert:
		return buildInsert(c)
	case Update:
		return buildUpdate(c)
	case Delete:
		return buildDelete(c)
	default:
		return "", nil, fmt.Errorf("%w: %T", ErrUnsupported, cmd)
	}
}

func buildSelect(c Select) (string, []any, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT * FROM %s", c.Table)
	args := appendWhere(&b, c.Where, nil)
	if c.OrderBy != "" {
		dir := "ASC"
		if c.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&b, " ORDER BY %s %s", c.OrderBy, dir)
	}
	if c.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", c.Limit)
	}
	return b.String(), args, nil
}

func buildInsert(c Insert) (string, []any, error) {
	if len(c.Columns) == 0 || len(c.Columns) != len(c.Values) {
		return "", nil, fmt.Errorf("insert into %s: column/value count mismatch", c.Table)
	}
	ph := make([]string, len(c.Columns))
	for i := range c.Columns {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		c.Table, strings.Join(c.Columns, ", "), strings.Join(ph, ", "))
	return q, c.Values, nil
}

func buildUpdate(c Update) (string, []any, error) {
	if len(c.Set) == 0 {
		return "", nil, fmt.Errorf("update %s: empty assignment list", c.Table)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "UPDATE %s SET ", c.Table)
	args := make([]any, 0, len(c.Set)+len(c.Where))
	for i, a := range c.Set {
		if i > 0 {
			b.WriteString(", ")
		}
		args = append(args, a.Value)
		fmt.Fprintf(&b, "%s = $%d", a.Column, len(args))
	}
	args = appendWhere(&b, c.Where, args)
	b.WriteString(" RETURNING *")
	return b.String(), args, nil
}

func buildDelete(c Delete) (string, []any, error) {
	if len(c.Where) == 0 {
		return "", nil, fmt.Errorf("delete from %s: refusing unqualified delete", c.Table)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "DELETE FROM %s", c.Table)
	args := appendWhere(&b, c.Where, nil)
	b.WriteString(" RETURNING *")
	return b.String(), args, nil
}

func appendWhere(b *strings.Builder, where []Cond, args []any) []any {
	for i, w := range where {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		if w.In != nil {
			ph := make([]string, len(w.In))
			for j, v := range w.In {
				args = append(args, v)
				ph[j] = fmt.Sprintf("$%d", len(args))
			}
			fmt.Fprintf(b, "%s IN (%s)", w.Column, strings.Join(ph, ","))
			continue
		}
		args = append(args, w.Value)
		fmt.Fprintf(b, "%s = $%d", w.Column, len(args))
	}
	return args
}
