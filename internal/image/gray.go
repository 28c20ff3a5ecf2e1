package image

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"topster-slicer/internal/matrix"
	"topster-slicer/pkg/colorutil"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/floats"
)

// ToGray renders m as an 8-bit gray image, truncating and saturating each
// intensity into [0, 255]. Matrix x maps to image x.
func ToGray(m *matrix.Matrix) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width(), m.Height()))
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			img.Pix[img.PixOffset(x, y)] = colorutil.ClampUint8(m.At(x, y))
		}
	}
	return img
}

// ToGrayScaled renders m with its value range stretched over [0, 255].
// Gradient matrices are signed, so ToGray would clip half of them.
func ToGrayScaled(m *matrix.Matrix) *image.Gray {
	values := m.Values()
	lo, hi := floats.Min(values), floats.Max(values)

	img := image.NewGray(image.Rect(0, 0, m.Width(), m.Height()))
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			img.Pix[img.PixOffset(x, y)] = colorutil.Scale(m.At(x, y), lo, hi)
		}
	}
	return img
}

// Save encodes img to path, choosing the format from the extension and
// creating parent directories as needed.
func Save(img image.Image, path string) error {
	if !IsWritableFormat(path) {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
