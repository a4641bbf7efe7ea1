package model

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field that failed validation
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	detail := fmt.Sprintf("%s: %s", v.Errors[0].Field, v.Errors[0].Message)
	if len(v.Errors) > 1 {
		detail = fmt.Sprintf("%s (and %d more errors)", detail, len(v.Errors)-1)
	}
	return "validation failed: " + detail
}

// Fields returns the names of the invalid fields
func (v *ValidationError) Fields() []string {
	fields := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

// HasField reports whether field failed validation
func (v *ValidationError) HasField(field string) bool {
	for _, e := range v.Errors {
		if strings.EqualFold(e.Field, field) {
			return true
		}
	}
	return false
}
