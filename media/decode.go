// Package media probes intrinsic dimensions from encoded media content.
package media

import (
	"bytes"
	"errors"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotMedia is returned when dimension probing is attempted on
// something that is not a media element.
var ErrNotMedia = errors.New("media: not an image or video element")

// SniffSize reads just enough of an encoded image to determine its
// intrinsic width and height. Supported formats: png, jpeg, gif, bmp,
// tiff, and webp.
func SniffSize(r io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// SniffSizeBytes is SniffSize over an in-memory buffer.
func SniffSizeBytes(data []byte) (width, height int, err error) {
	return SniffSize(bytes.NewReader(data))
}
