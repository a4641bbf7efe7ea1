package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/forgo/sorm/pkg/sorm"
)

// ============================================================================
// ValidationError Tests
// ============================================================================

func TestValidationError_Error_SingleField(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Errors: []FieldError{{Field: "name", Message: "name is required"}}}

	if got := err.Error(); got != "validation failed: name: name is required" {
		t.Errorf("unexpected message: %s", got)
	}
}

func TestValidationError_Error_MultipleFields(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Errors: []FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "age", Message: "age must be between 0 and 150"},
	}}

	if !strings.Contains(err.Error(), "(and 1 more errors)") {
		t.Errorf("expected count of remaining errors, got: %s", err.Error())
	}
}

func TestValidationError_Error_Empty(t *testing.T) {
	t.Parallel()

	if got := (&ValidationError{}).Error(); got != "validation failed" {
		t.Errorf("unexpected message: %s", got)
	}
}

// ============================================================================
// Person / Company Validation Tests
// ============================================================================

func TestPerson_Validate_Valid(t *testing.T) {
	t.Parallel()

	p := Person{Name: "Ada Lovelace", Age: 36, Status: PersonStatusActive}
	if err := p.Validate(); err != nil {
		t.Errorf("expected valid person, got: %v", err)
	}
}

func TestPerson_Validate_CollectsAllFields(t *testing.T) {
	t.Parallel()

	p := Person{Name: "   ", Age: -1, Status: "retired"}
	err := p.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	for _, field := range []string{"name", "age", "status"} {
		if !verr.HasField(field) {
			t.Errorf("expected %s to fail validation, got fields %v", field, verr.Fields())
		}
	}
}

func TestPerson_Validate_NameTooLong(t *testing.T) {
	t.Parallel()

	p := Person{Name: strings.Repeat("a", MaxNameLength+1)}
	err := p.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) || !verr.HasField("name") {
		t.Errorf("expected name error, got: %v", err)
	}
}

func TestCompany_Validate(t *testing.T) {
	t.Parallel()

	if err := (Company{Name: "Acme"}).Validate(); err != nil {
		t.Errorf("expected valid company, got: %v", err)
	}
	if err := (Company{}).Validate(); err == nil {
		t.Error("expected error for missing name")
	}
}

// ============================================================================
// Generated contract
// ============================================================================

func TestPerson_Contract(t *testing.T) {
	t.Parallel()

	var p Person
	if p.TableName() != "person" {
		t.Errorf("expected table person, got %s", p.TableName())
	}
	if p.Identity() != nil {
		t.Error("expected transient person to have no identity")
	}

	id := sorm.NewRecordID("person", "ada")
	p.ID = &id
	got := p.Identity()
	if got == nil || *got != id {
		t.Fatalf("expected identity %v, got %v", id, got)
	}
	got.ID = "changed"
	if p.ID.ID != "ada" {
		t.Error("Identity must return a copy")
	}
}

func TestWorksAt_TableName(t *testing.T) {
	t.Parallel()

	if (WorksAt{}).TableName() != "works_at" {
		t.Error("unexpected edge table")
	}
}
