// Package codec decodes AniDB replies to masked commands into typed records.
//
// A reply is tokenized by package response, each data line is routed by
// package route against the masks of the originating request, and the routed
// values are handed to the builder of the record kind.
package codec

import (
	"errors"
	"fmt"

	"github.com/anisan-cli/anidb/log"
	"github.com/anisan-cli/anidb/mask"
	"github.com/anisan-cli/anidb/response"
	"github.com/anisan-cli/anidb/route"
	"github.com/samber/lo"
)

// ErrMaskMismatch is returned when the supplied masks do not fit the record kind.
var ErrMaskMismatch = errors.New("codec: masks do not match record kind")

// Kind describes a record kind and the reply lines that carry it.
type Kind[T any] struct {
	// Name identifies the kind, e.g. "anime".
	Name string
	// Code is the success status whose data lines hold records of this kind.
	Code int
	// Fixed fields lead every data line regardless of the masks.
	Fixed []mask.Field
	// Tables lists the table of every mask the request carries, in wire order.
	Tables []*mask.Table
	// Build turns routed values into a record.
	Build func(route.Values) T
}

// Options tune decoding.
type Options struct {
	// Charset is the reply encoding. Empty means response.DefaultCharset.
	Charset string
}

// Line is the outcome of decoding one data line.
type Line[T any] struct {
	Record T
	Err    error
}

// Result holds the status of a reply and one Line per data line.
type Result[T any] struct {
	Tag   string
	Code  int
	Name  string
	Lines []Line[T]
}

// Records returns the successfully decoded records and the joined errors of the failed lines.
func (r *Result[T]) Records() ([]T, error) {
	var (
		records []T
		errs    []error
	)

	for i, line := range r.Lines {
		if line.Err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", i+1, line.Err))
			continue
		}
		records = append(records, line.Record)
	}

	return records, errors.Join(errs...)
}

// Decode decodes a reply payload in the default charset.
// masks are the masks the originating request carried, in wire order.
func Decode[T any](payload []byte, kind Kind[T], masks ...mask.Mask) (*Result[T], error) {
	return DecodeWith(Options{}, payload, kind, masks...)
}

// DecodeWith decodes a reply payload.
//
// Payload level failures (encoding, structure, a status that cannot carry the
// kind) fail the whole call. A bare error status is returned as a
// *response.StatusError. Each data line is decoded on its own: a failing line
// is reported in its Line and does not affect its siblings.
func DecodeWith[T any](opts Options, payload []byte, kind Kind[T], masks ...mask.Mask) (*Result[T], error) {
	if err := kind.check(masks); err != nil {
		return nil, err
	}

	resp, err := response.Parse(payload, opts.Charset)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, &response.StatusError{Code: resp.Code, Name: resp.Name}
	}

	if len(resp.Lines) > 0 && resp.Code != kind.Code {
		return nil, &response.MalformedResponseError{
			Reason: fmt.Sprintf("status %s does not carry %s records", resp.Header(), kind.Name),
		}
	}

	for _, m := range masks {
		if reserved := m.Reserved(); reserved != 0 {
			log.Debugf("%s mask %s sets reserved bits %x, ignoring them", m.Table().Name(), m.Hex(), reserved)
		}
	}

	layout := route.Layout{Fixed: kind.Fixed, Masks: masks}
	result := &Result[T]{
		Tag:   resp.Tag,
		Code:  resp.Code,
		Name:  resp.Name,
		Lines: make([]Line[T], len(resp.Lines)),
	}

	for i, raw := range resp.Lines {
		values, err := layout.Route(raw)
		if err != nil {
			log.Warnf("%s line %d: %v", kind.Name, i+1, err)
			result.Lines[i].Err = err
			continue
		}
		result.Lines[i].Record = kind.Build(values)
	}

	log.Debugf("decoded %s reply %s: %d lines", kind.Name, resp.Header(), len(result.Lines))
	return result, nil
}

func (k Kind[T]) check(masks []mask.Mask) error {
	if len(masks) != len(k.Tables) {
		return fmt.Errorf("%w: %s takes %d masks, got %d", ErrMaskMismatch, k.Name, len(k.Tables), len(masks))
	}

	for i, m := range masks {
		if m.Table() != k.Tables[i] {
			name := lo.TernaryF(m.Table() == nil, func() string { return "untyped" }, func() string { return m.Table().Name() })
			return fmt.Errorf("%w: mask %d of %s must be a %s mask, got %s", ErrMaskMismatch, i+1, k.Name, k.Tables[i].Name(), name)
		}
	}

	return nil
}
