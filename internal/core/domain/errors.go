package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound reports that no product resolves to the requested id.
	ErrNotFound = errors.New("product not found")

	// ErrConflict reports a create with an already occupied id.
	ErrConflict = errors.New("product with this id already exists")

	// ErrInvalidRef reports an id that is neither a catalog id
	// nor a store key.
	ErrInvalidRef = errors.New("invalid product id")
)

// ValidationError maps a field name to the reason it was rejected.
// It is resolved locally and never reaches the network.
type ValidationError map[string]string

func (ve ValidationError) Error() string {
	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, f := range fields {
		if i != 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", f, ve[f])
	}
	return b.String()
}

// Field returns the message for a field, empty when the field passed.
func (ve ValidationError) Field(name string) string {
	return ve[name]
}
