// Package boundary finds grid gaps in a gradient matrix by reducing it to
// a one-dimensional profile and scanning the profile for nonzero runs.
package boundary

import (
	"topster-slicer/internal/matrix"

	"gonum.org/v1/gonum/stat"
)

// ColumnProfile returns one value per x: the mean of every y value at that x.
func ColumnProfile(m *matrix.Matrix) []float64 {
	profile := make([]float64, m.Width())
	for x := range profile {
		profile[x] = stat.Mean(m.Line(x), nil)
	}
	return profile
}

// RowProfile returns one value per y: the mean of every x value at that y.
func RowProfile(m *matrix.Matrix) []float64 {
	return ColumnProfile(m.Transpose())
}
