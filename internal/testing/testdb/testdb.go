// Package testdb provides isolated SurrealDB databases for integration tests.
//
// Each TestDB connects to the server named by the TEST_DB_* environment
// variables and works in a fresh namespace, removed again by Close. When no
// server is reachable the calling test is skipped, so integration tests can
// live next to unit tests.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    people, err := sorm.All[model.Person](tdb.Ctx(), tdb.DB)
//	}
package testdb

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/sorm/pkg/database"
)

// TestDB provides an isolated database environment for testing.
type TestDB struct {
	DB        *database.SurrealDB
	Namespace string
	Database  string
	t         *testing.T
}

// getTestConfig returns database config from environment or defaults
func getTestConfig() database.Config {
	return database.Config{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnv("TEST_DB_PORT", "8000"),
		User:     getEnv("TEST_DB_USER", "root"),
		Password: getEnv("TEST_DB_PASSWORD", "root"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	return "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// New connects to the test server in a fresh namespace. The test is skipped
// when the server cannot be reached.
func New(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("testdb: skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := getTestConfig()
	cfg.Namespace = uniqueNamespace()
	cfg.Database = "test"

	db := database.NewSurrealDB(cfg)
	if err := db.Connect(ctx); err != nil {
		t.Skipf("testdb: surrealdb not reachable at %s: %v", cfg.Endpoint(), err)
	}

	return &TestDB{
		DB:        db,
		Namespace: cfg.Namespace,
		Database:  cfg.Database,
		t:         t,
	}
}

// Close removes the test namespace and closes the connection.
func (tdb *TestDB) Close() {
	if tdb.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := fmt.Sprintf("REMOVE NAMESPACE %s", tdb.Namespace)
	_, _ = tdb.DB.Query(ctx, query, nil) // Ignore errors on cleanup

	_ = tdb.DB.Close()
}

// Ctx returns a context with a reasonable timeout for test operations.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}

// MustExec executes a query and fails the test on error.
func (tdb *TestDB) MustExec(query string, vars map[string]any) []database.Result {
	tdb.t.Helper()
	results, err := tdb.DB.Query(tdb.Ctx(), query, vars)
	if err != nil {
		tdb.t.Fatalf("testdb: exec failed: %v\nQuery: %s", err, query)
	}
	return results
}
