// Package mask implements the fixed-width bit masks that select which optional attributes an AniDB reply carries.
package mask

import "fmt"

// FormatError reports a malformed mask hex string.
type FormatError struct {
	Table  string
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("mask: invalid %s mask %q: %s", e.Table, e.Input, e.Reason)
}
