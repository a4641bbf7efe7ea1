// Package codegen emits the sorm.Entity implementation for structs that
// carry a record id field.
package codegen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"strings"
)

// ErrNoModels is returned when a file declares no struct eligible for
// generation.
var ErrNoModels = errors.New("no models found")

// Model describes one struct the generator will implement Entity for.
type Model struct {
	// Name is the Go type name.
	Name string
	// Table is the storage table, the type name lower-cased.
	Table string
	// IDField is the name of the *RecordID field.
	IDField string
}

// File is the result of scanning one Go source file.
type File struct {
	Package string
	Models  []Model
}

// idFieldNames are the field names recognised as the record id.
var idFieldNames = []string{"ID", "Id"}

// ParseFile scans filename (or src, when non-nil) for struct types with a
// record id field. When only is non-empty, just those types are returned and
// any listed type that is missing or ineligible is an error.
func ParseFile(filename string, src any, only []string) (*File, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	out := &File{Package: f.Name.Name}
	found := make(map[string]bool)

	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			st, ok := ts.Type.(*ast.StructType)
			if !ok || ts.TypeParams != nil {
				continue
			}
			if len(only) > 0 && !slices.Contains(only, ts.Name.Name) {
				continue
			}
			field := recordIDField(st)
			if field == "" {
				continue
			}
			found[ts.Name.Name] = true
			out.Models = append(out.Models, Model{
				Name:    ts.Name.Name,
				Table:   strings.ToLower(ts.Name.Name),
				IDField: field,
			})
		}
	}

	var missing []string
	for _, name := range only {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: no eligible struct for %s", filename, strings.Join(missing, ", "))
	}
	if len(out.Models) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoModels)
	}
	return out, nil
}

// recordIDField returns the name of the id field if it is a pointer to a
// type named RecordID, qualified or not.
func recordIDField(st *ast.StructType) string {
	for _, field := range st.Fields.List {
		star, ok := field.Type.(*ast.StarExpr)
		if !ok || !isRecordID(star.X) {
			continue
		}
		for _, name := range field.Names {
			if slices.Contains(idFieldNames, name.Name) {
				return name.Name
			}
		}
	}
	return ""
}

func isRecordID(expr ast.Expr) bool {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name == "RecordID"
	case *ast.SelectorExpr:
		return t.Sel.Name == "RecordID"
	}
	return false
}
