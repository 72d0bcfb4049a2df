// Package querybuilder assembles the read-only PostgreSQL SELECT statements used by
// the document stores. Values are always bound as $n parameters.
package querybuilder

import (
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// sqlWriter accumulates statement text and numbers bound parameters in write order.
type sqlWriter struct {
	sb   strings.Builder
	args []any
	err  error
}

func (w *sqlWriter) write(parts ...string) {
	for _, p := range parts {
		w.sb.WriteString(p)
	}
}

// bind appends v to the argument list and writes its placeholder.
func (w *sqlWriter) bind(v any) {
	w.args = append(w.args, v)
	w.sb.WriteByte('$')
	w.sb.WriteString(strconv.Itoa(len(w.args)))
}

// writeExpr copies expr, binding one arg per '?'. The counts must match.
func (w *sqlWriter) writeExpr(expr string, args []any) {
	if n := strings.Count(expr, "?"); n != len(args) {
		w.err = crerr.Newf("expression %q has %d placeholders for %d args", expr, n, len(args))
		return
	}
	for i := 0; ; i++ {
		head, tail, found := strings.Cut(expr, "?")
		w.sb.WriteString(head)
		if !found {
			return
		}
		w.bind(args[i])
		expr = tail
	}
}

// Condition renders one predicate of the WHERE clause.
type Condition func(w *sqlWriter)

func Eq(column string, value any) Condition {
	return func(w *sqlWriter) {
		w.write(column, " = ")
		w.bind(value)
	}
}

func IsNull(column string) Condition {
	return func(w *sqlWriter) { w.write(column, " IS NULL") }
}

// In renders an always-false predicate for an empty value list.
func In(column string, values []any) Condition {
	return func(w *sqlWriter) {
		if len(values) == 0 {
			w.write("1=0")
			return
		}
		w.write(column, " IN (")
		for i, v := range values {
			if i > 0 {
				w.write(", ")
			}
			w.bind(v)
		}
		w.write(")")
	}
}

// MatchesFold matches column against a POSIX regular expression, ignoring case.
func MatchesFold(column, pattern string) Condition {
	return func(w *sqlWriter) {
		w.write(column, " ~* ")
		w.bind(pattern)
	}
}

// JSONBContains checks that the jsonb column contains doc, a serialized JSON value.
func JSONBContains(column, doc string) Condition {
	return func(w *sqlWriter) {
		w.write(column, " @> ")
		w.bind(doc)
		w.write("::jsonb")
	}
}

type selectColumn struct {
	expr string
	args []any
}

type SelectBuilder struct {
	columns []selectColumn
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	b := &SelectBuilder{}
	for _, c := range columns {
		b.columns = append(b.columns, selectColumn{expr: c})
	}
	return b
}

// ColumnExpr appends a computed column. Each ? in expr binds the next arg, and
// column args are numbered before WHERE args.
func (b *SelectBuilder) ColumnExpr(expr string, args ...any) *SelectBuilder {
	b.columns = append(b.columns, selectColumn{expr: expr, args: args})
	return b
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, terms...)
	return b
}

func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = n
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, crerr.New("select columns are required")
	case strings.TrimSpace(b.table) == "":
		return "", nil, crerr.New("select table is required")
	}

	var w sqlWriter
	w.write("SELECT ")
	for i, c := range b.columns {
		if i > 0 {
			w.write(", ")
		}
		w.writeExpr(c.expr, c.args)
	}
	w.write(" FROM ", b.table)

	for i, cond := range b.where {
		if i == 0 {
			w.write(" WHERE ")
		} else {
			w.write(" AND ")
		}
		cond(&w)
	}
	if len(b.orderBy) > 0 {
		w.write(" ORDER BY ", strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.write(" LIMIT ", strconv.Itoa(b.limit))
	}

	if w.err != nil {
		return "", nil, w.err
	}
	return w.sb.String(), w.args, nil
}
