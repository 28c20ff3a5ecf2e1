// Package geometry provides the integer rectangle types used to describe
// where grid cells sit inside a topster.
package geometry

import (
	"fmt"
	"image"
)

// RectInt represents a rectangle with integer coordinates.
// X and Width run along the matrix x axis, Y and Height along y.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewRectInt builds a rectangle from half-open spans [x0,x1) and [y0,y1).
func NewRectInt(x0, x1, y0, y1 int) RectInt {
	return RectInt{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether the rectangle has no area.
func (r RectInt) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns Width*Height, or 0 for an empty rectangle.
func (r RectInt) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// IsSquare reports whether the rectangle is non-empty with equal sides.
func (r RectInt) IsSquare() bool {
	return !r.Empty() && r.Width == r.Height
}

// Image converts to an image.Rectangle, offset by origin.
func (r RectInt) Image(origin image.Point) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height).Add(origin)
}

func (r RectInt) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
