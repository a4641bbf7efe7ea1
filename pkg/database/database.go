// Package database provides the SurrealDB execution boundary used by sorm.
//
// The package exposes a small Database interface that accepts SurrealQL text
// plus named variables and returns undecoded result sets. Decoding into
// concrete types happens in the caller through Result.Decode, so the same
// handle serves any entity type.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//   - ErrDecode: A result set could not be decoded into the target type
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrConnection) {
//	    // Handle unreachable server
//	}
//
// # Usage Example
//
//	db := database.NewSurrealDB(cfg)
//	if err := db.Connect(ctx); err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	results, err := db.Query(ctx, "SELECT * FROM person WHERE age > $age", map[string]any{"age": 18})
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/surrealdb/surrealdb.go/surrealcbor"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record or result set does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, invalid reference, etc.).
	ErrQuery = errors.New("query error")

	// ErrDecode indicates a result set did not match the requested Go type.
	ErrDecode = errors.New("decode error")
)

// Executor runs a single SurrealQL request. It is the only capability the
// mapping layer needs from a database handle.
type Executor interface {
	// Query executes query with vars bound by name and returns one Result
	// per statement, in statement order.
	Query(ctx context.Context, query string, vars map[string]any) ([]Result, error)
}

// Database defines the interface for a managed database connection
type Database interface {
	Executor

	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Version reports the server version string
	Version(ctx context.Context) (string, error)
}

// Result is the outcome of one statement. Raw holds the statement's result
// value exactly as the server encoded it.
type Result struct {
	Status string
	Raw    cbor.RawMessage
}

// Empty reports whether the statement produced no value at all.
func (r Result) Empty() bool {
	return len(r.Raw) == 0
}

// Decode unmarshals the statement result into v using the SurrealDB codec,
// so datetimes, durations, NONE and record ids decode into their Go types.
func (r Result) Decode(v any) error {
	if r.Empty() {
		return ErrNotFound
	}
	if err := surrealcbor.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// NewResult encodes v with the SurrealDB codec as a successful statement
// result. Used to stand in for server responses in tests.
func NewResult(v any) (Result, error) {
	raw, err := surrealcbor.Marshal(v)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return Result{Status: StatusOK, Raw: raw}, nil
}

// StatusOK is the status SurrealDB reports for a successful statement.
const StatusOK = "OK"

// Config holds database configuration
type Config struct {
	Scheme    string
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}

// Endpoint returns the connection URL for the configured server.
func (c Config) Endpoint() string {
	scheme := c.Scheme
	if scheme == "" {
		scheme = "ws"
	}
	return fmt.Sprintf("%s://%s:%s", scheme, c.Host, c.Port)
}
