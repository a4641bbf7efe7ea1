// Package fixtures provides entity factories for integration tests.
//
// Each factory persists an entity through sorm.Save with sensible defaults,
// allowing customization via option functions, and returns the stored value
// with its identity set.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	acme := f.CreateCompany(t)
//	ada := f.CreatePerson(t, func(p *model.Person) { p.Age = 36 })
package fixtures

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/sorm/internal/model"
	"github.com/forgo/sorm/pkg/sorm"
)

// Factory creates test entities in the database
type Factory struct {
	db sorm.Executor
}

// New creates a new fixture factory
func New(db sorm.Executor) *Factory {
	return &Factory{db: db}
}

// shortID returns a random suffix for unique names
func shortID() string {
	return uuid.NewString()[:8]
}

func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// CreatePerson saves an active adult person with optional customizations
func (f *Factory) CreatePerson(t *testing.T, opts ...func(*model.Person)) model.Person {
	t.Helper()

	p := model.Person{
		Name:   fmt.Sprintf("person_%s", shortID()),
		Email:  fmt.Sprintf("person_%s@test.local", shortID()),
		Age:    30,
		Status: model.PersonStatusActive,
	}
	for _, fn := range opts {
		fn(&p)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("fixtures: invalid person: %v", err)
	}

	return mustSave(t, f.db, p)
}

// CreateCompany saves a company with optional customizations
func (f *Factory) CreateCompany(t *testing.T, opts ...func(*model.Company)) model.Company {
	t.Helper()

	c := model.Company{
		Name:    fmt.Sprintf("company_%s", shortID()),
		Country: "NZ",
	}
	for _, fn := range opts {
		fn(&c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("fixtures: invalid company: %v", err)
	}

	return mustSave(t, f.db, c)
}

// Employ links person to company with a works_at edge
func (f *Factory) Employ(t *testing.T, person model.Person, company model.Company) {
	t.Helper()

	if err := sorm.RelateVia[model.WorksAt](ctx(t), f.db, person, company); err != nil {
		t.Fatalf("fixtures: failed to relate %v to %v: %v", person.ID, company.ID, err)
	}
}

func mustSave[T sorm.Entity](t *testing.T, db sorm.Executor, entity T) T {
	t.Helper()

	saved, err := sorm.Save(ctx(t), db, entity)
	if err != nil {
		t.Fatalf("fixtures: failed to save %s: %v", entity.TableName(), err)
	}
	if saved == nil || (*saved).Identity() == nil {
		t.Fatalf("fixtures: %s saved without identity", entity.TableName())
	}
	return *saved
}
