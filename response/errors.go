// Package response splits raw AniDB UDP replies into a status header and delimited data lines.
package response

import "fmt"

// EncodingError reports a payload that cannot be decoded under its declared charset.
type EncodingError struct {
	Charset string
	Err     error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("response: cannot decode payload as %s: %v", e.Charset, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a payload whose structure does not follow the protocol,
// such as data lines on an error status.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("response: malformed: %s: %v", e.Reason, e.Err)
	}
	return "response: malformed: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// StatusError is an error status returned by the server in place of data.
type StatusError struct {
	Code int
	Name string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("anidb: %d %s", e.Code, e.Name)
}
