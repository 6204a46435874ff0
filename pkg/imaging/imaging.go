// Package imaging validates inline image payloads before they are sent to the
// media host, so obviously broken uploads fail fast without burning quota.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var ErrInvalidImage = errors.New("image data is not a decodable image")

// Info describes a decoded image header.
type Info struct {
	Format string
	Width  int
	Height int
}

// IsDataURI reports whether the payload is an inline base64 data URI rather
// than a remote URL.
func IsDataURI(payload string) bool {
	return strings.HasPrefix(payload, "data:")
}

// Inspect decodes the header of a base64 data URI payload. Remote URLs are
// not fetched; callers should skip inspection for those.
func Inspect(payload string) (*Info, error) {
	idx := strings.Index(payload, ";base64,")
	if !IsDataURI(payload) || idx == -1 {
		return nil, ErrInvalidImage
	}

	raw, err := base64.StdEncoding.DecodeString(payload[idx+len(";base64,"):])
	if err != nil {
		return nil, ErrInvalidImage
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}

	return &Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
