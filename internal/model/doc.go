// Package model defines the example domain entities persisted through sorm.
//
// Each entity carries an ID field of type *sorm.RecordID; the TableName and
// Identity methods in the *_sorm.go files are produced by `sorm gen`:
//
//	type Person struct {
//	    ID   *sorm.RecordID `json:"id,omitempty"`
//	    Name string         `json:"name"`
//	}
//
// Edge types such as WorksAt implement sorm.Relation by hand.
//
// # Validation
//
// Entities expose Validate, which returns a *ValidationError listing every
// invalid field.
package model
