// Package mask implements the fixed-width bit masks that select which optional attributes an AniDB reply carries.
package mask

import "fmt"

// Bit is a 0-based bit position counted from the least significant bit of a mask.
type Bit uint8

// Group returns the byte-group index of the bit. Group 0 is the least significant byte.
func (b Bit) Group() int {
	return int(b) / 8
}

// Flag returns the bit as a single-bit integer value.
func (b Bit) Flag() uint64 {
	return 1 << b
}

// Type is the semantic type of a masked field.
type Type uint8

const (
	// Int is a base-10 signed integer.
	Int Type = iota
	// String is passed through verbatim. An empty string is a value, not an absence.
	String
	// List is a sequence of strings joined by the field's separator.
	List
	// IntList is a sequence of integers joined by the field's separator.
	IntList
	// Bool is "0" or "1".
	Bool
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case String:
		return "string"
	case List:
		return "list"
	case IntList:
		return "intlist"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// DefaultSeparator joins list elements when a field does not declare its own.
const DefaultSeparator = ","

// Field is one entry of a mask table.
type Field struct {
	// Bit is the position of the field in the mask.
	Bit Bit
	// ID identifies the field in decoded values.
	ID string
	// Type decides how the raw value is decoded.
	Type Type
	// Sep splits List and IntList values. DefaultSeparator when empty.
	Sep string
	// Rank is the position of the field in a reply to a mask with every table bit set.
	Rank int
}

// Group returns the byte-group index of the field.
func (f Field) Group() int {
	return f.Bit.Group()
}

// Separator returns the list separator of the field.
func (f Field) Separator() string {
	if f.Sep == "" {
		return DefaultSeparator
	}
	return f.Sep
}

func (f Field) String() string {
	return fmt.Sprintf("%s (bit %d, %s)", f.ID, f.Bit, f.Type)
}
