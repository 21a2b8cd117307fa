// Package response splits raw AniDB UDP replies into a status header and delimited data lines.
package response

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	// LineSeparator ends the header and every data line.
	LineSeparator = "\n"
	// FieldSeparator joins the values of a data line. The server replaces any
	// '|' inside a value, so there is no escape sequence to honor.
	FieldSeparator = "|"
)

// Response is a tokenized reply.
type Response struct {
	// Tag echoes the tag parameter of the request, if it had one.
	Tag string
	// Code is the three digit reply code.
	Code int
	// Name is the rest of the header line, e.g. "ANIME".
	Name string
	// Lines holds the raw values of each data line.
	Lines [][]string
}

// IsError reports whether the reply carries an error status.
func (r *Response) IsError() bool {
	return IsErrorStatus(r.Code)
}

// Header returns the status line without its tag.
func (r *Response) Header() string {
	if r.Name == "" {
		return strconv.Itoa(r.Code)
	}
	return fmt.Sprintf("%d %s", r.Code, r.Name)
}

// Parse tokenizes a raw reply payload whose text is encoded in the named charset.
// Compressed payloads are inflated first. An empty charset means DefaultCharset.
func Parse(payload []byte, charset string) (*Response, error) {
	if IsCompressed(payload) {
		inflated, err := Inflate(payload)
		if err != nil {
			return nil, &MalformedResponseError{Reason: "inflate compressed payload", Err: err}
		}
		payload = inflated
	}

	text, err := decodeText(payload, charset)
	if err != nil {
		return nil, err
	}

	text = strings.ReplaceAll(text, "\r\n", LineSeparator)
	text = strings.TrimSuffix(text, LineSeparator)
	if text == "" {
		return nil, &MalformedResponseError{Reason: "empty payload"}
	}

	lines := strings.Split(text, LineSeparator)

	r, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	// Blank lines carry no record.
	data := lo.Compact(lines[1:])
	if r.IsError() && len(data) > 0 {
		return nil, &MalformedResponseError{
			Reason: fmt.Sprintf("error status %s followed by %d data lines", r.Header(), len(data)),
		}
	}

	r.Lines = make([][]string, len(data))
	for i, line := range data {
		r.Lines[i] = SplitLine(line)
	}

	return r, nil
}

// SplitLine splits a data line into its raw values.
func SplitLine(line string) []string {
	return strings.Split(line, FieldSeparator)
}

// parseHeader reads "[<tag> ]<code> <name>".
// A second token that is a code marks the first one as the tag, even when
// the tag itself is three digits. Reply names never start with a code.
func parseHeader(line string) (*Response, error) {
	parts := strings.SplitN(line, " ", 3)

	r := &Response{}
	if len(parts) > 1 && parts[0] != "" {
		if _, ok := parseCode(parts[1]); ok {
			r.Tag, parts = parts[0], parts[1:]
		}
	}

	code, ok := parseCode(parts[0])
	if !ok {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("invalid status line %q", line)}
	}
	r.Code = code

	if len(parts) > 1 {
		r.Name = strings.Join(parts[1:], " ")
	}

	return r, nil
}

func parseCode(s string) (int, bool) {
	if len(s) != 3 {
		return 0, false
	}
	code, err := strconv.Atoi(s)
	if err != nil || code < 100 {
		return 0, false
	}
	return code, true
}
