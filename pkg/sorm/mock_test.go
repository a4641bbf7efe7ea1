package sorm

import (
	"context"
	"testing"
	"time"

	"github.com/forgo/sorm/pkg/database"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go/surrealcbor"
)

// ============================================================================
// Test entities
// ============================================================================

type person struct {
	ID     *RecordID `json:"id,omitempty"`
	Name   string    `json:"name"`
	Age    int       `json:"age"`
	Status string    `json:"status,omitempty"`
}

func (person) TableName() string { return "person" }

func (p person) Identity() *RecordID {
	if p.ID == nil {
		return nil
	}
	id := *p.ID
	return &id
}

type event struct {
	ID         *RecordID  `json:"id,omitempty"`
	Title      string     `json:"title"`
	Host       *RecordID  `json:"host,omitempty"`
	CreatedOn  time.Time  `json:"created_on"`
	CanceledOn *time.Time `json:"canceled_on,omitempty"`
}

func (event) TableName() string { return "event" }

func (e event) Identity() *RecordID {
	if e.ID == nil {
		return nil
	}
	id := *e.ID
	return &id
}

type knows struct{}

func (knows) TableName() string { return "knows" }

func personWithID(key, name string) person {
	id := NewRecordID("person", key)
	return person{ID: &id, Name: name}
}

// ============================================================================
// Mock executor
// ============================================================================

type call struct {
	query string
	vars  map[string]any
}

type mockExecutor struct {
	calls     []call
	queryFunc func(ctx context.Context, query string, vars map[string]any) ([]database.Result, error)
}

func (m *mockExecutor) Query(ctx context.Context, query string, vars map[string]any) ([]database.Result, error) {
	m.calls = append(m.calls, call{query: query, vars: vars})
	if m.queryFunc != nil {
		return m.queryFunc(ctx, query, vars)
	}
	return nil, nil
}

// returning builds an executor whose every call yields one statement result
// encoding v.
func returning(t *testing.T, v any) *mockExecutor {
	t.Helper()
	res, err := database.NewResult(v)
	require.NoError(t, err)
	return &mockExecutor{
		queryFunc: func(ctx context.Context, query string, vars map[string]any) ([]database.Result, error) {
			return []database.Result{res}, nil
		},
	}
}

// returningRaw builds an executor answering with v encoded by the SurrealDB
// codec, for payloads built from raw server values.
func returningRaw(t *testing.T, v any) *mockExecutor {
	t.Helper()
	raw, err := surrealcbor.Marshal(v)
	require.NoError(t, err)
	res := database.Result{Status: database.StatusOK, Raw: raw}
	return &mockExecutor{
		queryFunc: func(ctx context.Context, query string, vars map[string]any) ([]database.Result, error) {
			return []database.Result{res}, nil
		},
	}
}

func failing(err error) *mockExecutor {
	return &mockExecutor{
		queryFunc: func(ctx context.Context, query string, vars map[string]any) ([]database.Result, error) {
			return nil, err
		},
	}
}
