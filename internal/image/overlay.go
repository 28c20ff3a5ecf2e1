package image

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"topster-slicer/pkg/geometry"
)

// BlendMode specifies how a band is composited onto the source.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDifference
)

func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendDifference:
		return "Difference"
	default:
		return "Unknown"
	}
}

// ParseBlendMode returns the mode whose String matches name, or BlendNormal.
func ParseBlendMode(name string) BlendMode {
	for m := BlendNormal; m <= BlendDifference; m++ {
		if m.String() == name {
			return m
		}
	}
	return BlendNormal
}

// Band is a translucent rectangle drawn over the source image.
type Band struct {
	Rect  geometry.RectInt
	Color color.Color
}

// Overlay draws bands over a copy of src. Bands are clipped to the image.
func Overlay(src image.Image, bands []Band, mode BlendMode, opacity float64) *image.RGBA {
	b := src.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(result, result.Bounds(), src, b.Min, draw.Src)

	for _, band := range bands {
		r := band.Rect.Image(image.Point{}).Intersect(result.Bounds())
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				result.Set(x, y, blend(result.At(x, y), band.Color, mode, opacity))
			}
		}
	}
	return result
}

// blend performs the blend operation between two colors.
func blend(dst, src color.Color, mode BlendMode, opacity float64) color.Color {
	sr, sg, sb, sa := src.RGBA()
	dr, dg, db, da := dst.RGBA()

	// Convert to 0-1 range
	sf := [4]float64{float64(sr) / 65535.0, float64(sg) / 65535.0, float64(sb) / 65535.0, float64(sa) / 65535.0}
	df := [4]float64{float64(dr) / 65535.0, float64(dg) / 65535.0, float64(db) / 65535.0, float64(da) / 65535.0}

	var rf [3]float64
	for i := 0; i < 3; i++ {
		switch mode {
		case BlendMultiply:
			rf[i] = sf[i] * df[i]
		case BlendScreen:
			rf[i] = 1 - (1-sf[i])*(1-df[i])
		case BlendOverlay:
			if df[i] < 0.5 {
				rf[i] = 2 * sf[i] * df[i]
			} else {
				rf[i] = 1 - 2*(1-sf[i])*(1-df[i])
			}
		case BlendDifference:
			rf[i] = math.Abs(sf[i] - df[i])
		default:
			rf[i] = sf[i]
		}
	}

	alpha := sf[3] * opacity
	return color.RGBA{
		R: uint8(clamp(rf[0]*alpha+df[0]*(1-alpha), 0, 1) * 255),
		G: uint8(clamp(rf[1]*alpha+df[1]*(1-alpha), 0, 1) * 255),
		B: uint8(clamp(rf[2]*alpha+df[2]*(1-alpha), 0, 1) * 255),
		A: uint8(clamp(alpha+df[3]*(1-alpha), 0, 1) * 255),
	}
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
