// Package imageprep validates uploaded bytes and downscales oversized photos
// before they are stored.
package imageprep

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrEmpty      = errors.New("file is empty")
	ErrNotAnImage = errors.New("file is not an image")
)

type Result struct {
	Data        []byte
	ContentType string
	// Extension includes the leading dot, e.g. ".jpg".
	Extension string
	Resized   bool
}

// accepted lists the raster types the site serves. Vector types such as SVG
// can carry scripts and are refused.
var accepted = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var resizable = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
}

// Prepare sniffs the content type and rejects anything but JPEG, PNG, GIF
// and WebP. JPEG/PNG/GIF input whose longest side exceeds maxDimension is
// re-encoded to fit; maxDimension <= 0 disables resizing. WebP passes through
// unchanged.
func Prepare(data []byte, maxDimension int) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	mime := mimetype.Detect(data)
	contentType := mime.String()
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	if !accepted[contentType] {
		return nil, fmt.Errorf("%w: detected %s", ErrNotAnImage, contentType)
	}

	result := &Result{
		Data:        data,
		ContentType: contentType,
		Extension:   mime.Extension(),
	}

	format, ok := resizable[contentType]
	if !ok || maxDimension <= 0 {
		return result, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}
	if cfg.Width <= maxDimension && cfg.Height <= maxDimension {
		return result, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	fitted := imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, format, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	result.Data = buf.Bytes()
	result.Resized = true
	return result, nil
}
