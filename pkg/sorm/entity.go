package sorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/sorm/pkg/database"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// RecordID identifies a persisted record as a (table, key) pair.
type RecordID = models.RecordID

// NewRecordID returns the identity of key within table.
func NewRecordID(table string, key any) RecordID {
	return RecordID{Table: table, ID: key}
}

// Entity is the capability every persisted type provides. Implementations
// are normally generated by `sorm gen` and use value receivers, so that the
// zero value of T can report its table.
type Entity interface {
	// TableName returns the collection the type is stored in.
	TableName() string

	// Identity returns a copy of the record id, or nil for a transient
	// value that has never been saved.
	Identity() *RecordID
}

// Executor is the database handle every operation runs against.
type Executor = database.Executor

func tableOf[T Entity]() string {
	var zero T
	return zero.TableName()
}

// Find loads the record with the given key from T's table. A missing record
// yields (nil, nil).
func Find[T Entity](ctx context.Context, db Executor, key any) (*T, error) {
	id := NewRecordID(tableOf[T](), key)
	rows, err := queryRows[T](ctx, db, "SELECT * FROM $record", map[string]any{"record": &id})
	if err != nil {
		return nil, storageError("find", err)
	}
	return first(rows), nil
}

// All returns every record in T's table. Use Query for bounded reads.
func All[T Entity](ctx context.Context, db Executor) ([]T, error) {
	rows, err := queryRows[T](ctx, db, "SELECT * FROM "+tableOf[T](), nil)
	if err != nil {
		return nil, storageError("all", err)
	}
	return rows, nil
}

// Save creates entity when it has no identity and replaces the stored
// record wholesale when it does. The stored record is returned.
func Save[T Entity](ctx context.Context, db Executor, entity T) (*T, error) {
	query, vars := saveStatement(entity)
	rows, err := queryRows[T](ctx, db, query, vars)
	if err != nil {
		return nil, storageError("save", err)
	}
	return first(rows), nil
}

// saveStatement chooses between create and update on identity alone.
func saveStatement[T Entity](entity T) (string, map[string]any) {
	if id := entity.Identity(); id != nil {
		return "UPDATE $id CONTENT $content", map[string]any{
			"id":      id,
			"content": entity,
		}
	}
	return "CREATE " + entity.TableName() + " CONTENT $content", map[string]any{
		"content": entity,
	}
}

// Delete removes the stored record of entity and returns its last value,
// if the server reported one.
func Delete[T Entity](ctx context.Context, db Executor, entity T) (*T, error) {
	id := entity.Identity()
	if id == nil {
		return nil, preconditionFailed(causeMissingID)
	}
	return deleteRecord[T](ctx, db, id)
}

// DeleteByID removes the record with the given key from T's table.
func DeleteByID[T Entity](ctx context.Context, db Executor, key any) (*T, error) {
	id := NewRecordID(tableOf[T](), key)
	return deleteRecord[T](ctx, db, &id)
}

// Record ids are bound by pointer so the SDK's CBOR marshaler is always used.
func deleteRecord[T Entity](ctx context.Context, db Executor, id *RecordID) (*T, error) {
	vars := map[string]any{"record": id}
	rows, err := queryRows[T](ctx, db, "DELETE $record RETURN BEFORE", vars)
	if err != nil {
		return nil, storageError("delete", err)
	}
	return first(rows), nil
}

// Relate creates a directed edge labeled edge from source to target. Both
// sides must be persisted. The edge record itself is not returned.
func Relate(ctx context.Context, db Executor, source Entity, edge string, target Entity) error {
	from := source.Identity()
	if from == nil {
		return preconditionFailed(causeSourceMissingID)
	}
	to := target.Identity()
	if to == nil {
		return preconditionFailed(causeTargetMissingID)
	}

	query := fmt.Sprintf("RELATE $from->%s->$to", edge)
	vars := map[string]any{"from": from, "to": to}
	if _, err := db.Query(ctx, query, vars); err != nil {
		return storageError("relate", err)
	}
	return nil
}

// queryRows runs query and decodes its first statement result into []T.
func queryRows[T any](ctx context.Context, db Executor, query string, vars map[string]any) ([]T, error) {
	results, err := db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: empty response", database.ErrQuery)
	}

	var rows []T
	if err := results[0].Decode(&rows); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rows, nil
}

func first[T any](rows []T) *T {
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}
