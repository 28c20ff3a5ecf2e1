// Package colorutil provides shared color helpers for rendering matrices and
// grid overlays.
package colorutil

import (
	"image/color"
	"math"
)

// Overlay colors.
var (
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// ClampUint8 rounds v toward zero and saturates it to [0, 255]. NaN maps to 0.
func ClampUint8(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// Scale maps v from [lo, hi] onto [0, 255]. A degenerate range maps to 0.
func Scale(v, lo, hi float64) uint8 {
	if hi <= lo {
		return 0
	}
	return ClampUint8((v - lo) / (hi - lo) * 255)
}
