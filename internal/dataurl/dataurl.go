// Package dataurl encodes and decodes base64 "data:" URLs, the form image
// payloads travel in between the editor and the generation backend.
package dataurl

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	scheme = "data:"
	marker = ";base64,"
)

// ErrMalformed is returned when a string is not a base64 data URL.
var ErrMalformed = errors.New("dataurl: malformed data URL")

// Encode returns "data:<mime>;base64,<payload>".
func Encode(mime string, data []byte) string {
	var sb strings.Builder
	sb.Grow(len(scheme) + len(mime) + len(marker) + base64.StdEncoding.EncodedLen(len(data)))
	sb.WriteString(scheme)
	sb.WriteString(mime)
	sb.WriteString(marker)
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return sb.String()
}

// Is reports whether s looks like a data URL.
func Is(s string) bool {
	return len(s) >= len(scheme) && strings.EqualFold(s[:len(scheme)], scheme)
}

// Decode splits a base64 data URL into its media type and payload.
// Media type parameters other than base64 are kept in mime.
func Decode(s string) (mime string, data []byte, err error) {
	if !Is(s) {
		return "", nil, ErrMalformed
	}
	header, payload, ok := strings.Cut(s[len(scheme):], ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload", ErrMalformed)
	}
	mime, ok = strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("%w: not base64 encoded", ErrMalformed)
	}
	data, err = base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return mime, data, nil
}
