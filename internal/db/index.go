package db

import (
	"errors"
	"strconv"
	"strings"
)

// IndexField is a single key of a secondary index.
type IndexField struct {
	Name       string
	Descending bool
}

// IndexDefinition describes a secondary index over a collection or table.
type IndexDefinition struct {
	Name       string
	Collection string
	Fields     []IndexField
	Unique     bool
}

// Validate checks that the index definition is well-formed.
func (idx *IndexDefinition) Validate() error {
	if idx.Name == "" {
		return errors.New("index name is required")
	}
	if !IsValidIdentifier(idx.Name) {
		return errors.New("index name contains invalid characters")
	}
	if idx.Collection == "" {
		return errors.New("index collection is required")
	}
	if !IsValidIdentifier(idx.Collection) {
		return errors.New("index collection contains invalid characters")
	}
	if len(idx.Fields) == 0 {
		return errors.New("at least one field is required")
	}

	seen := make(map[string]bool)
	for i := range idx.Fields {
		f := &idx.Fields[i]
		if f.Name == "" {
			return errors.New("field name is required at index " + strconv.Itoa(i))
		}
		if !isValidFieldName(f.Name) {
			return errors.New("field name contains invalid characters: " + f.Name)
		}
		if seen[f.Name] {
			return errors.New("duplicate field name: " + f.Name)
		}
		seen[f.Name] = true
	}

	return nil
}

// FieldNames returns the indexed field names in order.
func (idx *IndexDefinition) FieldNames() []string {
	names := make([]string, len(idx.Fields))
	for i, f := range idx.Fields {
		names[i] = f.Name
	}
	return names
}

// String returns a debug representation resembling CREATE INDEX.
func (idx *IndexDefinition) String() string {
	parts := []string{"CREATE"}
	if idx.Unique {
		parts = append(parts, "UNIQUE")
	}
	parts = append(parts, "INDEX", idx.Name, "ON", idx.Collection)
	cols := make([]string, len(idx.Fields))
	for i, f := range idx.Fields {
		cols[i] = f.Name
		if f.Descending {
			cols[i] += " DESC"
		}
	}
	parts = append(parts, "("+strings.Join(cols, ", ")+")")
	return strings.Join(parts, " ")
}

// IsValidIdentifier returns true if s matches [a-zA-Z0-9_:-]+.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isSpecial := r == '_' || r == ':' || r == '-'
		if !isAlpha && !isDigit && !isSpecial {
			return false
		}
	}
	return true
}

// isValidFieldName also accepts dotted document paths.
func isValidFieldName(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !IsValidIdentifier(part) {
			return false
		}
	}
	return true
}
