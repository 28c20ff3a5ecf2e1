// Package matrix provides the 2D intensity grid shared by every stage of the
// topster pipeline.
//
// A Matrix is indexed [x][y] with x in [0, Width) and y in [0, Height).
// Storage is a gonum dense matrix whose rows are x and whose columns are y,
// so a "line" of the matrix is every y value for one fixed x.
package matrix

import (
	"fmt"

	"topster-slicer/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a rectangular grid of float64 intensities.
// Dimensions are fixed at creation and are always at least 1×1.
type Matrix struct {
	d *mat.Dense
}

// New creates a zero-filled matrix. It panics if either dimension is < 1.
func New(width, height int) *Matrix {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", width, height))
	}
	return &Matrix{d: mat.NewDense(width, height, nil)}
}

// FromLines builds a matrix from lines[x][y]. All lines must have the same
// non-zero length.
func FromLines(lines [][]float64) *Matrix {
	if len(lines) == 0 || len(lines[0]) == 0 {
		panic("matrix: empty lines")
	}
	m := New(len(lines), len(lines[0]))
	for x, line := range lines {
		if len(line) != len(lines[0]) {
			panic(fmt.Sprintf("matrix: line %d has length %d, want %d", x, len(line), len(lines[0])))
		}
		m.d.SetRow(x, line)
	}
	return m
}

// Width returns the size of the x axis.
func (m *Matrix) Width() int {
	w, _ := m.d.Dims()
	return w
}

// Height returns the size of the y axis.
func (m *Matrix) Height() int {
	_, h := m.d.Dims()
	return h
}

// At returns the value at (x, y).
func (m *Matrix) At(x, y int) float64 {
	return m.d.At(x, y)
}

// Set stores v at (x, y).
func (m *Matrix) Set(x, y int, v float64) {
	m.d.Set(x, y, v)
}

// Line returns a copy of every y value at column x.
func (m *Matrix) Line(x int) []float64 {
	return mat.Row(nil, x, m.d)
}

// Lines returns a copy of the matrix as lines[x][y].
func (m *Matrix) Lines() [][]float64 {
	lines := make([][]float64, m.Width())
	for x := range lines {
		lines[x] = m.Line(x)
	}
	return lines
}

// Values returns every value in x-major order.
func (m *Matrix) Values() []float64 {
	w, h := m.d.Dims()
	out := make([]float64, 0, w*h)
	for x := 0; x < w; x++ {
		out = append(out, m.d.RawRowView(x)...)
	}
	return out
}

// Transpose returns a new matrix of size Height×Width with
// result[i][j] = m[j][i].
func (m *Matrix) Transpose() *Matrix {
	return &Matrix{d: mat.DenseCopyOf(m.d.T())}
}

// SliceX returns a copy of the vertical strip x ∈ [start, end).
// It panics unless 0 <= start < end <= Width.
func (m *Matrix) SliceX(start, end int) *Matrix {
	return m.slice(start, end, 0, m.Height())
}

// SliceY returns a copy of the horizontal strip y ∈ [start, end).
// It panics unless 0 <= start < end <= Height.
func (m *Matrix) SliceY(start, end int) *Matrix {
	return m.slice(0, m.Width(), start, end)
}

// Region returns a copy of the sub-matrix covered by r, where r.X/r.Width
// run along x and r.Y/r.Height along y.
func (m *Matrix) Region(r geometry.RectInt) *Matrix {
	return m.slice(r.X, r.X+r.Width, r.Y, r.Y+r.Height)
}

func (m *Matrix) slice(x0, x1, y0, y1 int) *Matrix {
	if x0 < 0 || x1 > m.Width() || x0 >= x1 || y0 < 0 || y1 > m.Height() || y0 >= y1 {
		panic(fmt.Sprintf("matrix: slice [%d,%d)x[%d,%d) out of %dx%d", x0, x1, y0, y1, m.Width(), m.Height()))
	}
	// Slice returns a view into the backing array; copy so the result never
	// aliases m.
	return &Matrix{d: mat.DenseCopyOf(m.d.Slice(x0, x1, y0, y1))}
}

// Equal reports whether both matrices have the same dimensions and values.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.Width() != o.Width() || m.Height() != o.Height() {
		return false
	}
	return mat.Equal(m.d, o.d)
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{d: mat.DenseCopyOf(m.d)}
}
