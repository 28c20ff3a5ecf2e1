package filter

import "topster-slicer/internal/matrix"

// BT.601 luma weights.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// PixelSource is a decoded RGB image addressed by (x, y) with x in
// [0, Width) and y in [0, Height).
type PixelSource interface {
	Width() int
	Height() int
	RGBAt(x, y int) (r, g, b uint8)
}

// Luma returns the intensity of one 8-bit RGB pixel.
func Luma(r, g, b uint8) float64 {
	return float64(float64(r)*LumaR) + float64(float64(g)*LumaG) + float64(float64(b)*LumaB)
}

// Grayscale converts src into an intensity matrix of the same size.
// The caller guarantees src has at least one pixel.
func Grayscale(src PixelSource) *matrix.Matrix {
	w, h := src.Width(), src.Height()
	m := matrix.New(w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			m.Set(x, y, Luma(src.RGBAt(x, y)))
		}
	}
	return m
}
