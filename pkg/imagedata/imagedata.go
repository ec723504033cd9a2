// Package imagedata decodes submitted images from data URIs and checks
// their real content type.
package imagedata

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/vincent-petithory/dataurl"
)

var (
	ErrEmpty     = errors.New("image is empty")
	ErrMalformed = errors.New("image is not a valid data URI")
	ErrNotImage  = errors.New("unsupported image type")
	ErrTooLarge  = errors.New("image is too large")
)

// Allowed lists the content types accepted for upload and classification.
var Allowed = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Image is a decoded upload.
type Image struct {
	Data        []byte
	ContentType string
}

// Decode parses a data URI ("data:image/png;base64,...") or bare base64 and
// returns the bytes with the sniffed content type. The declared media type
// is ignored. maxBytes <= 0 disables the size check.
func Decode(s string, maxBytes int64) (Image, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Image{}, ErrEmpty
	}

	var data []byte
	if strings.HasPrefix(s, "data:") {
		du, err := dataurl.DecodeString(s)
		if err != nil {
			return Image{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		data = du.Data
	} else {
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return Image{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		data = raw
	}

	return Sniff(data, maxBytes)
}

// Sniff checks raw bytes against the size limit and the allowed types.
func Sniff(data []byte, maxBytes int64) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmpty
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return Image{}, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), maxBytes)
	}

	mt := mimetype.Detect(data)
	for _, allowed := range Allowed {
		if mt.Is(allowed) {
			return Image{Data: data, ContentType: allowed}, nil
		}
	}
	return Image{}, fmt.Errorf("%w: %s", ErrNotImage, mt.String())
}

// Extension returns the file extension for an allowed content type, with
// the leading dot, or "" for anything else.
func Extension(contentType string) string {
	for _, allowed := range Allowed {
		if allowed == contentType {
			return mimetype.Lookup(allowed).Extension()
		}
	}
	return ""
}

// Message returns a user-facing reason for a Decode error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrEmpty):
		return "empty"
	case errors.Is(err, ErrTooLarge):
		return "too large"
	case errors.Is(err, ErrNotImage):
		return "must be a JPEG, PNG, GIF or WebP image"
	}
	return "must be a base64 data URI"
}
