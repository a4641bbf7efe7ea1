// Package sorm maps Go structs to SurrealDB records.
//
// A type becomes persistable by implementing Entity, which `sorm gen` does
// for any struct carrying an ID field of type *RecordID:
//
//	type Person struct {
//	    ID     *sorm.RecordID `json:"id,omitempty"`
//	    Name   string         `json:"name"`
//	    Age    int            `json:"age"`
//	}
//
// The generic functions Find, All, Save, Delete, DeleteByID and Relate
// operate on any Entity. Save creates a record when the entity has no
// identity and replaces it otherwise.
//
// # Queries
//
// Query returns a builder that compiles to a single parameterized SELECT:
//
//	adults, err := sorm.Query[model.Person](db).
//	    Filter("age", ">", 18).
//	    Filter("status", "=", "active").
//	    OrderBy("name", "asc").
//	    Limit(10).
//	    Fetch(ctx)
//
// compiles to
//
//	SELECT * FROM person WHERE age > $param_0 AND status = $param_1 ORDER BY name ASC LIMIT 10
//
// Filter values are always bound. Field names, operators and graph paths
// are written into the query text verbatim; never pass user input there.
//
// # Errors
//
// Failures from the database are wrapped in ErrStorage. Operations that
// need a persisted entity return ErrPreconditionFailed without touching
// the database.
package sorm
