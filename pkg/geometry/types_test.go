package geometry

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectInt(t *testing.T) {
	tests := []struct {
		name   string
		r      RectInt
		area   int
		square bool
		str    string
	}{
		{"cell", NewRectInt(10, 30, 40, 60), 400, true, "20x20+10+40"},
		{"wide", NewRectInt(0, 8, 2, 6), 32, false, "8x4+0+2"},
		{"empty", NewRectInt(5, 5, 0, 3), 0, false, "0x3+5+0"},
		{"inverted", NewRectInt(5, 2, 0, 3), 0, false, "-3x3+5+0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.area, tt.r.Area())
			assert.Equal(t, tt.area == 0, tt.r.Empty())
			assert.Equal(t, tt.square, tt.r.IsSquare())
			assert.Equal(t, tt.str, tt.r.String())
		})
	}
}

func TestRectIntImage(t *testing.T) {
	r := NewRectInt(10, 30, 40, 60)
	assert.Equal(t, image.Rect(10, 40, 30, 60), r.Image(image.Point{}))
	assert.Equal(t, image.Rect(15, 47, 35, 67), r.Image(image.Pt(5, 7)))
}
