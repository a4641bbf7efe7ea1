package model

import (
	"strings"

	"github.com/forgo/sorm/pkg/sorm"
)

//go:generate go run github.com/forgo/sorm/cmd/sorm gen person.go --types Person,Company

// Validation constants
const (
	MaxNameLength = 100
	MaxAge        = 150
)

// Person statuses
const (
	PersonStatusActive   = "active"
	PersonStatusInactive = "inactive"
)

// Person is a human known to the system
type Person struct {
	ID     *sorm.RecordID `json:"id,omitempty"`
	Name   string         `json:"name"`
	Email  string         `json:"email,omitempty"`
	Age    int            `json:"age"`
	Status string         `json:"status,omitempty"`
	// Company is a record link. Read through Employee to expand it.
	Company *sorm.RecordID `json:"company,omitempty"`
}

// Company employs people
type Company struct {
	ID      *sorm.RecordID `json:"id,omitempty"`
	Name    string         `json:"name"`
	Country string         `json:"country,omitempty"`
}

// Employee is a read view of a person row with the company link fetched,
// as returned by Query[Employee](db).FetchField("company").
type Employee struct {
	ID      *sorm.RecordID `json:"id,omitempty"`
	Name    string         `json:"name"`
	Email   string         `json:"email,omitempty"`
	Age     int            `json:"age"`
	Status  string         `json:"status,omitempty"`
	Company *Company       `json:"company,omitempty"`
}

// TableName returns the person table Employee rows are read from.
func (Employee) TableName() string { return "person" }

// Identity returns a copy of the person record id.
func (e Employee) Identity() *sorm.RecordID {
	if e.ID == nil {
		return nil
	}
	id := *e.ID
	return &id
}

// WorksAt is the person->company edge
type WorksAt struct {
	Role string `json:"role,omitempty"`
}

// TableName returns the edge table
func (WorksAt) TableName() string { return "works_at" }

// Validate checks the person fields before saving
func (p Person) Validate() error {
	var errs []FieldError
	name := strings.TrimSpace(p.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "name must be 100 characters or less"})
	}
	if p.Age < 0 || p.Age > MaxAge {
		errs = append(errs, FieldError{Field: "age", Message: "age must be between 0 and 150"})
	}
	if p.Status != "" && p.Status != PersonStatusActive && p.Status != PersonStatusInactive {
		errs = append(errs, FieldError{Field: "status", Message: "status must be active or inactive"})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Validate checks the company fields before saving
func (c Company) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Errors: []FieldError{{Field: "name", Message: "name is required"}}}
	}
	return nil
}
