// Package route matches the positional values of a reply line to the fields its mask selected.
package route

import (
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Values maps field identifiers to decoded values.
// It holds exactly the fields whose bits were set in the routed masks.
type Values struct {
	m map[string]any
}

// Len returns the number of routed fields.
func (v Values) Len() int {
	return len(v.m)
}

// Has reports whether the field was routed.
func (v Values) Has(id string) bool {
	_, ok := v.m[id]
	return ok
}

// Keys returns the routed field identifiers in lexical order.
func (v Values) Keys() []string {
	keys := lo.Keys(v.m)
	slices.Sort(keys)
	return keys
}

// Get returns the decoded value of a field.
func (v Values) Get(id string) (any, bool) {
	value, ok := v.m[id]
	return value, ok
}

// Int returns an Int field.
func (v Values) Int(id string) mo.Option[int] {
	n, ok := v.m[id].(int64)
	if !ok {
		return mo.None[int]()
	}
	return mo.Some(int(n))
}

// Int64 returns an Int field at full width.
func (v Values) Int64(id string) mo.Option[int64] {
	return typed[int64](v, id)
}

// String returns a String field. An empty string is a present value.
func (v Values) String(id string) mo.Option[string] {
	return typed[string](v, id)
}

// List returns a List field.
func (v Values) List(id string) mo.Option[[]string] {
	return typed[[]string](v, id)
}

// IntList returns an IntList field.
func (v Values) IntList(id string) mo.Option[[]int] {
	ns, ok := v.m[id].([]int64)
	if !ok {
		return mo.None[[]int]()
	}
	return mo.Some(lo.Map(ns, func(n int64, _ int) int { return int(n) }))
}

// Bool returns a Bool field.
func (v Values) Bool(id string) mo.Option[bool] {
	return typed[bool](v, id)
}

func typed[T any](v Values, id string) mo.Option[T] {
	value, ok := v.m[id].(T)
	if !ok {
		return mo.None[T]()
	}
	return mo.Some(value)
}
