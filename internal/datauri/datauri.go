// Package datauri converts image bytes to and from base64 data URIs.
package datauri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/wailsapp/mimetype"
)

var (
	ErrEmpty     = errors.New("image is empty")
	ErrNotImage  = errors.New("content is not an image")
	ErrMalformed = errors.New("malformed data URI")
)

// Encode detects the content type of b and returns it as
// "data:<mime>;base64,<payload>". Only image content is accepted.
func Encode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", ErrEmpty
	}
	mt := mimetype.Detect(b)
	if mt == nil || !strings.HasPrefix(mt.String(), "image/") {
		return "", ErrNotImage
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

// Decode splits a base64 data URI into its media type and decoded payload.
func Decode(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrMalformed
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrMalformed
	}
	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", ErrMalformed)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return mediaType, data, nil
}

// Extension returns the usual file extension (with leading dot) for the
// detected content of b, or "" when unknown.
func Extension(b []byte) string {
	if mt := mimetype.Detect(b); mt != nil {
		return mt.Extension()
	}
	return ""
}
