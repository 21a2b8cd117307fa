// Package mask implements the fixed-width bit masks that select which optional attributes an AniDB reply carries.
package mask

import (
	"fmt"
	"iter"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// MaxWidth is the widest mask a table may describe, in bytes.
const MaxWidth = 8

// Table maps the valid bit positions of one mask kind to their fields.
//
// Tables are built once at package initialization and never mutated, so they
// are safe for concurrent use without synchronization.
type Table struct {
	name   string
	width  int
	fields []Field
	byID   map[string]int
	valid  uint64
}

// NewTable builds a table of the given width in bytes from its fields.
// It panics on duplicate bits or identifiers and on bits outside the width,
// since tables are static protocol data.
func NewTable(name string, width int, fields ...Field) *Table {
	if width <= 0 || width > MaxWidth {
		panic(fmt.Sprintf("mask: table %s: invalid width %d", name, width))
	}

	t := &Table{
		name:   name,
		width:  width,
		fields: slices.Clone(fields),
		byID:   make(map[string]int, len(fields)),
	}

	slices.SortFunc(t.fields, func(a, b Field) int {
		return int(b.Bit) - int(a.Bit)
	})

	for i := range t.fields {
		f := &t.fields[i]
		if int(f.Bit) >= width*8 {
			panic(fmt.Sprintf("mask: table %s: bit %d of %s exceeds %d bytes", name, f.Bit, f.ID, width))
		}
		if t.valid&f.Bit.Flag() != 0 {
			panic(fmt.Sprintf("mask: table %s: duplicate bit %d", name, f.Bit))
		}
		if _, ok := t.byID[f.ID]; ok {
			panic(fmt.Sprintf("mask: table %s: duplicate field %s", name, f.ID))
		}

		f.Rank = i
		t.valid |= f.Bit.Flag()
		t.byID[f.ID] = i
	}

	return t
}

// Name returns the record kind the table describes.
func (t *Table) Name() string {
	return t.name
}

// Width returns the mask width in bytes.
func (t *Table) Width() int {
	return t.width
}

// Digits returns the length of the canonical hex form.
func (t *Table) Digits() int {
	return t.width * 2
}

// Valid returns the integer with every table bit set.
func (t *Table) Valid() uint64 {
	return t.valid
}

// Len returns the number of fields in the table.
func (t *Table) Len() int {
	return len(t.fields)
}

// Fields returns a copy of the table entries, highest bit first.
func (t *Table) Fields() []Field {
	return slices.Clone(t.fields)
}

// IDs returns the field identifiers, highest bit first.
func (t *Table) IDs() []string {
	return lo.Map(t.fields, func(f Field, _ int) string { return f.ID })
}

// Lookup returns the field with the given identifier.
func (t *Table) Lookup(id string) mo.Option[Field] {
	i, ok := t.byID[id]
	if !ok {
		return mo.None[Field]()
	}
	return mo.Some(t.fields[i])
}

// Empty returns a mask with no bits set.
func (t *Table) Empty() Mask {
	return Mask{table: t}
}

// All returns a mask with every table bit set.
func (t *Table) All() Mask {
	return Mask{bits: t.valid, table: t}
}

// FromUint returns a mask holding v, truncated to the table width.
// Reserved bits within the width are kept.
func (t *Table) FromUint(v uint64) Mask {
	return Mask{bits: v & t.limit(), table: t}
}

// Of returns a mask with the bits of the named fields set.
func (t *Table) Of(ids ...string) (Mask, error) {
	m := t.Empty()
	for _, id := range ids {
		f, ok := t.Lookup(id).Get()
		if !ok {
			return Mask{}, fmt.Errorf("mask: %s has no field %q", t.name, id)
		}
		m = m.With(f.Bit)
	}
	return m, nil
}

// Parse reads the canonical hex form of a mask. Case is ignored, but the
// digit count must match the table width exactly.
func (t *Table) Parse(s string) (Mask, error) {
	if len(s) != t.Digits() {
		return Mask{}, &FormatError{
			Table:  t.name,
			Input:  s,
			Reason: fmt.Sprintf("expected %d hex digits, got %d", t.Digits(), len(s)),
		}
	}

	if strings.ContainsFunc(s, func(r rune) bool { return !isHexDigit(r) }) {
		return Mask{}, &FormatError{Table: t.name, Input: s, Reason: "not a hex number"}
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Mask{}, &FormatError{Table: t.name, Input: s, Reason: err.Error()}
	}

	return Mask{bits: v, table: t}, nil
}

// InBitOrder yields the table fields whose bit is set in m, highest bit first.
// This is the order in which the server emits the fields of a reply.
// Bits of m outside the table are skipped.
func (t *Table) InBitOrder(m Mask) iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, f := range t.fields {
			if m.bits&f.Bit.Flag() == 0 {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// Count returns the number of table fields selected by m.
func (t *Table) Count(m Mask) int {
	return bits.OnesCount64(m.bits & t.valid)
}

func (t *Table) limit() uint64 {
	if t.width == MaxWidth {
		return ^uint64(0)
	}
	return 1<<(t.width*8) - 1
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
