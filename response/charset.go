// Package response splits raw AniDB UDP replies into a status header and delimited data lines.
package response

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// DefaultCharset is the reply encoding of a session that never issued ENCODING.
const DefaultCharset = "utf-8"

var (
	errUnknownCharset = errors.New("unknown charset")
	errInvalidUTF8    = errors.New("invalid utf-8 sequence")
)

// decodeText converts payload bytes in the named charset to a Go string.
// UTF-8 input is validated rather than repaired, since a replacement
// character would silently corrupt a field value.
func decodeText(b []byte, label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultCharset
	}

	enc, name := charset.Lookup(label)
	if enc == nil {
		return "", &EncodingError{Charset: label, Err: errUnknownCharset}
	}

	if name == "utf-8" {
		if !utf8.Valid(b) {
			return "", &EncodingError{Charset: name, Err: errInvalidUTF8}
		}
		return string(b), nil
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return "", &EncodingError{Charset: name, Err: err}
	}

	return string(out), nil
}
