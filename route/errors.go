// Package route matches the positional values of a reply line to the fields its mask selected.
package route

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/anidb/mask"
)

// FieldCountMismatchError reports a data line whose value count differs from
// the number of fields its masks select. Routing such a line would shift
// every following value onto the wrong field.
type FieldCountMismatchError struct {
	// Masks holds the hex form of every routed mask, in wire order.
	Masks    []string
	Expected int
	Got      int
}

func (e *FieldCountMismatchError) Error() string {
	return fmt.Sprintf(
		"route: mask %s selects %d fields, line has %d",
		strings.Join(e.Masks, "+"), e.Expected, e.Got,
	)
}

// FieldTypeError reports a raw value that cannot be converted to its field type.
type FieldTypeError struct {
	Field string
	Type  mask.Type
	Value string
	Err   error
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("route: field %s: %q is not a valid %s: %v", e.Field, e.Value, e.Type, e.Err)
}

func (e *FieldTypeError) Unwrap() error {
	return e.Err
}
