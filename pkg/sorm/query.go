package sorm

import (
	"context"
	"fmt"
	"maps"
	"strings"
)

// QueryBuilder accumulates a single SELECT over T and compiles it into
// SurrealQL plus named parameters.
//
// Field names, operators, and the source are written into the query text
// as given and must come from trusted call sites. Only filter values are
// bound as parameters.
//
// A builder is owned by one goroutine and is consumed by Fetch or First.
type QueryBuilder[T Entity] struct {
	db          Executor
	source      string
	filters     []string
	bindings    map[string]any
	fetchFields []string
	orderField  string
	orderDir    string
	limit       *uint32
	start       *uint32
	consumed    bool
}

// Query returns a builder reading from T's table.
func Query[T Entity](db Executor) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:       db,
		source:   tableOf[T](),
		bindings: make(map[string]any),
	}
}

// FromGraph reads from a graph traversal instead of the table, for example
// FromGraph("person:tobie", "->knows->person").
func (q *QueryBuilder[T]) FromGraph(start, traversal string) *QueryBuilder[T] {
	q.source = start + traversal
	return q
}

// Filter adds the predicate `field operator value`. Predicates are joined
// with AND in the order they were added.
func (q *QueryBuilder[T]) Filter(field, operator string, value any) *QueryBuilder[T] {
	param := fmt.Sprintf("param_%d", len(q.filters))
	q.filters = append(q.filters, fmt.Sprintf("%s %s $%s", field, operator, param))
	q.bindings[param] = value
	return q
}

// FetchField expands the record link stored in field.
func (q *QueryBuilder[T]) FetchField(field string) *QueryBuilder[T] {
	q.fetchFields = append(q.fetchFields, field)
	return q
}

// OrderBy sets the sort key, replacing any previous one.
func (q *QueryBuilder[T]) OrderBy(field, direction string) *QueryBuilder[T] {
	q.orderField = field
	q.orderDir = strings.ToUpper(direction)
	return q
}

// Limit caps the number of returned records.
func (q *QueryBuilder[T]) Limit(n uint32) *QueryBuilder[T] {
	q.limit = &n
	return q
}

// Start skips the first n records.
func (q *QueryBuilder[T]) Start(n uint32) *QueryBuilder[T] {
	q.start = &n
	return q
}

// Build compiles the query without executing it. The returned map is a copy
// of the bindings.
func (q *QueryBuilder[T]) Build() (string, map[string]any) {
	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(q.source)

	if len(q.filters) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.filters, " AND "))
	}
	if q.orderField != "" {
		fmt.Fprintf(&sb, " ORDER BY %s %s", q.orderField, q.orderDir)
	}
	if q.limit != nil {
		fmt.Fprintf(&sb, " LIMIT %d", *q.limit)
	}
	if q.start != nil {
		fmt.Fprintf(&sb, " START %d", *q.start)
	}
	if len(q.fetchFields) > 0 {
		sb.WriteString(" FETCH ")
		sb.WriteString(strings.Join(q.fetchFields, ", "))
	}

	return sb.String(), maps.Clone(q.bindings)
}

// Fetch executes the query and decodes every returned record.
func (q *QueryBuilder[T]) Fetch(ctx context.Context) ([]T, error) {
	if q.consumed {
		return nil, preconditionFailed(causeConsumed)
	}
	q.consumed = true

	query, vars := q.Build()
	rows, err := queryRows[T](ctx, q.db, query, vars)
	if err != nil {
		return nil, storageError("fetch", err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// First executes the query with LIMIT 1 and returns the record, or nil when
// nothing matched.
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	rows, err := q.Limit(1).Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return first(rows), nil
}
