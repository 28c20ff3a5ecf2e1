// Package image loads topster images, adapts them to the pipeline's pixel
// source and renders matrices and grid overlays back into images.
package image

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// Extra decoders beyond the ones imaging registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("image has no pixels")
	// ErrUnsupportedFormat is returned for paths with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Source is a decoded image with non-premultiplied 8-bit RGBA pixels,
// addressed from (0, 0) regardless of the original bounds.
type Source struct {
	Path  string      // Original file path, empty for in-memory images
	Image *image.NRGBA // Pixels, origin at (0, 0)
}

// Load decodes the image at path, applying any EXIF orientation.
func Load(path string) (*Source, error) {
	if !IsSupportedFormat(path) {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	src, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	src.Path = path
	return src, nil
}

// FromImage copies img into a Source.
func FromImage(img image.Image) (*Source, error) {
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, ErrEmptyImage
	}
	// Clone always returns an NRGBA rooted at (0, 0).
	return &Source{Image: imaging.Clone(img)}, nil
}

// Width returns the image width in pixels.
func (s *Source) Width() int {
	return s.Image.Rect.Dx()
}

// Height returns the image height in pixels.
func (s *Source) Height() int {
	return s.Image.Rect.Dy()
}

// RGBAt returns the color channels at (x, y), ignoring alpha.
func (s *Source) RGBAt(x, y int) (r, g, b uint8) {
	i := s.Image.PixOffset(x, y)
	p := s.Image.Pix[i : i+3 : i+3]
	return p[0], p[1], p[2]
}

// SupportedFormats returns the list of supported image extensions.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif", ".webp"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}

// IsWritableFormat reports whether Save can encode to path's extension.
// WebP is decode-only.
func IsWritableFormat(path string) bool {
	_, err := imaging.FormatFromFilename(path)
	return err == nil
}
