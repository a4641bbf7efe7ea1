package sorm

import "context"

// Relation is implemented by edge types. Its table name is the edge label.
type Relation interface {
	TableName() string
}

// RelateVia creates an edge of type E from source to target.
func RelateVia[E Relation](ctx context.Context, db Executor, source, target Entity) error {
	var edge E
	return Relate(ctx, db, source, edge.TableName(), target)
}
