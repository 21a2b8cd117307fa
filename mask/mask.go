// Package mask implements the fixed-width bit masks that select which optional attributes an AniDB reply carries.
package mask

import (
	"fmt"
	"iter"
)

// Mask is an immutable bit-vector over the bits of one Table.
// Every operation returns a new Mask and leaves the receiver untouched.
type Mask struct {
	bits  uint64
	table *Table
}

// Table returns the table the mask belongs to.
func (m Mask) Table() *Table {
	return m.table
}

// Uint64 returns the underlying integer, reserved bits included.
func (m Mask) Uint64() uint64 {
	return m.bits
}

// With returns a copy of m with the given bits set.
func (m Mask) With(bits ...Bit) Mask {
	for _, b := range bits {
		m.bits |= b.Flag()
	}
	if m.table != nil {
		m.bits &= m.table.limit()
	}
	return m
}

// Union returns a mask with every bit set in m or o.
// It panics when the masks belong to different tables.
func (m Mask) Union(o Mask) Mask {
	switch {
	case m.table == nil:
		m.table = o.table
	case o.table != nil && o.table != m.table:
		panic(fmt.Sprintf("mask: union of %s and %s masks", m.table.name, o.table.name))
	}
	m.bits |= o.bits
	return m
}

// Has reports whether the bit is set, whether or not the table defines it.
func (m Mask) Has(b Bit) bool {
	return m.bits&b.Flag() != 0
}

// IsEmpty reports whether no bit is set.
func (m Mask) IsEmpty() bool {
	return m.bits == 0
}

// Reserved returns the set bits the table does not define.
func (m Mask) Reserved() uint64 {
	if m.table == nil {
		return m.bits
	}
	return m.bits &^ m.table.valid
}

// Count returns the number of table fields the mask selects.
func (m Mask) Count() int {
	if m.table == nil {
		return 0
	}
	return m.table.Count(m)
}

// Fields yields the selected table fields in reply order.
func (m Mask) Fields() iter.Seq[Field] {
	if m.table == nil {
		return func(func(Field) bool) {}
	}
	return m.table.InBitOrder(m)
}

// Hex returns the canonical form: lowercase big-endian hex, zero-padded to the table width.
func (m Mask) Hex() string {
	digits := MaxWidth * 2
	if m.table != nil {
		digits = m.table.Digits()
	}
	return fmt.Sprintf("%0*x", digits, m.bits)
}

func (m Mask) String() string {
	return m.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (m Mask) MarshalText() ([]byte, error) {
	return []byte(m.Hex()), nil
}
