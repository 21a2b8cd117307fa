// Package route matches the positional values of a reply line to the fields its mask selected.
package route

import (
	"errors"
	"strconv"
	"strings"

	"github.com/anisan-cli/anidb/mask"
	"github.com/samber/lo"
)

var errNotBool = errors.New("expected 0 or 1")

// Layout describes the shape of one data line: fixed fields that are always
// present, followed by the fields of each mask in wire order.
type Layout struct {
	Fixed []mask.Field
	Masks []mask.Mask
}

// Route decodes the raw values of a line produced by a request carrying m.
func Route(m mask.Mask, raw []string) (Values, error) {
	return Layout{Masks: []mask.Mask{m}}.Route(raw)
}

// Expected returns the number of values a matching line holds.
func (l Layout) Expected() int {
	return len(l.Fixed) + lo.SumBy(l.Masks, func(m mask.Mask) int { return m.Count() })
}

// Route zips the raw values of one line against the layout fields and decodes each value.
// It returns no values at all when any value fails.
func (l Layout) Route(raw []string) (Values, error) {
	if expected := l.Expected(); expected != len(raw) {
		return Values{}, &FieldCountMismatchError{
			Masks:    lo.Map(l.Masks, func(m mask.Mask, _ int) string { return m.Hex() }),
			Expected: expected,
			Got:      len(raw),
		}
	}

	values := make(map[string]any, len(raw))
	i := 0
	put := func(f mask.Field) error {
		v, err := Decode(f, raw[i])
		if err != nil {
			return err
		}
		values[f.ID] = v
		i++
		return nil
	}

	for _, f := range l.Fixed {
		if err := put(f); err != nil {
			return Values{}, err
		}
	}

	for _, m := range l.Masks {
		for f := range m.Fields() {
			if err := put(f); err != nil {
				return Values{}, err
			}
		}
	}

	return Values{m: values}, nil
}

// Decode converts one raw value to the type of its field.
//
// Int values become int64, List values []string, IntList values []int64 and
// Bool values bool. String values are returned unchanged, empty included.
// Empty lists decode to an empty slice.
func Decode(f mask.Field, raw string) (any, error) {
	switch f.Type {
	case mask.Int:
		return parseInt(f, raw)
	case mask.List:
		return split(raw, f.Separator()), nil
	case mask.IntList:
		parts := split(raw, f.Separator())
		ns := make([]int64, len(parts))
		for i, part := range parts {
			n, err := parseInt(f, part)
			if err != nil {
				return nil, err
			}
			ns[i] = n
		}
		return ns, nil
	case mask.Bool:
		switch raw {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
		return nil, &FieldTypeError{Field: f.ID, Type: f.Type, Value: raw, Err: errNotBool}
	default:
		return raw, nil
	}
}

func parseInt(f mask.Field, raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &FieldTypeError{Field: f.ID, Type: f.Type, Value: raw, Err: err}
	}
	return n, nil
}

func split(raw, sep string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, sep)
}
