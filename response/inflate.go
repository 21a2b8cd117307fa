// Package response splits raw AniDB UDP replies into a status header and delimited data lines.
package response

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// MaxInflated bounds the size of an inflated payload.
const MaxInflated = 1 << 20

// IsCompressed reports whether the payload is a compressed reply.
// Compressed replies start with two zero bytes followed by a raw deflate stream.
func IsCompressed(payload []byte) bool {
	return len(payload) >= 2 && payload[0] == 0 && payload[1] == 0
}

// Inflate returns the uncompressed bytes of a compressed reply.
func Inflate(payload []byte) ([]byte, error) {
	if !IsCompressed(payload) {
		return nil, fmt.Errorf("missing compression marker")
	}

	r := flate.NewReader(bytes.NewReader(payload[2:]))
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, MaxInflated+1))
	if err != nil {
		return nil, err
	}
	if len(out) > MaxInflated {
		return nil, fmt.Errorf("inflated payload exceeds %d bytes", MaxInflated)
	}

	return out, nil
}
