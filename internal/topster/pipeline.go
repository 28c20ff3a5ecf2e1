// Package topster runs the cover-extraction pipeline over a topster image
// and writes the resulting cells.
//
// Pipeline: grayscale → Gaussian blur → Sobel-X on the blurred matrix for
// columns and on its transpose for rows → nonzero-run sections → edge pairs
// → cells cut from the unblurred grayscale matrix.
//
// Inside a uniform cover the profile is zero up to rounding, and whether
// that residue cancels to exactly zero depends on the colours. The sections
// alone are therefore unstable: a cover shows up either as one run or as
// two edge runs. Pairing rising and falling edges makes the cell spans the
// same either way.
package topster

import (
	"topster-slicer/internal/boundary"
	"topster-slicer/internal/filter"
	"topster-slicer/internal/grid"
	"topster-slicer/internal/matrix"
)

// Lag is how many indices a section of Sobel(Gaussian(m)) runs past the last
// pixel of the feature that produced it: each backward 3×3 pass adds Reach.
const Lag = 2 * filter.Reach

// Analysis holds every intermediate of one pipeline run.
type Analysis struct {
	Base    *matrix.Matrix // grayscale source
	Blurred *matrix.Matrix

	ColumnGradient *matrix.Matrix // SobelX over Blurred
	RowGradient    *matrix.Matrix // SobelX over Blurred transposed, indexed [y][x]
	SobelY         *matrix.Matrix // SobelY over Base, diagnostics only

	ColumnProfile []float64
	RowProfile    []float64

	// Detected sections, in gradient index space.
	ColumnSections []boundary.Section
	RowSections    []boundary.Section

	// Cell spans in base-matrix space, after pairing and lag removal.
	ColumnSpans []boundary.Section
	RowSpans    []boundary.Section

	Cells []grid.Cell
}

// Extract runs the pipeline and returns the cells. No detected boundary on
// either axis yields no cells.
func Extract(src filter.PixelSource) []grid.Cell {
	base := filter.Grayscale(src)
	blurred := filter.Convolve(base, filter.Gaussian())

	columns := Spans(boundary.ColumnProfile(filter.Convolve(blurred, filter.SobelX())))
	rows := Spans(boundary.ColumnProfile(filter.Convolve(blurred.Transpose(), filter.SobelX())))

	return grid.Segment(base, columns, rows)
}

// Analyze runs the pipeline like Extract but keeps every intermediate.
func Analyze(src filter.PixelSource) *Analysis {
	a := &Analysis{Base: filter.Grayscale(src)}
	a.Blurred = filter.Convolve(a.Base, filter.Gaussian())
	a.ColumnGradient = filter.Convolve(a.Blurred, filter.SobelX())
	a.RowGradient = filter.Convolve(a.Blurred.Transpose(), filter.SobelX())
	a.SobelY = filter.Convolve(a.Base, filter.SobelY())

	a.ColumnProfile = boundary.ColumnProfile(a.ColumnGradient)
	a.RowProfile = boundary.ColumnProfile(a.RowGradient)
	a.ColumnSections = boundary.Sections(a.ColumnProfile)
	a.RowSections = boundary.Sections(a.RowProfile)
	a.ColumnSpans = CellSpans(boundary.Pair(a.ColumnProfile, a.ColumnSections))
	a.RowSpans = CellSpans(boundary.Pair(a.RowProfile, a.RowSections))

	a.Cells = grid.Segment(a.Base, a.ColumnSpans, a.RowSpans)
	return a
}

// Spans returns the cell spans of a gradient profile.
func Spans(profile []float64) []boundary.Section {
	return CellSpans(boundary.Pair(profile, boundary.Sections(profile)))
}

// CellSpans converts gradient sections to base-matrix spans by removing the
// trailing Lag. Sections no longer than Lag are edge responses with no
// content behind them and are dropped.
func CellSpans(sections []boundary.Section) []boundary.Section {
	var spans []boundary.Section
	for _, s := range sections {
		span := s.TrimEnd(Lag)
		if span.Empty() {
			continue
		}
		spans = append(spans, span)
	}
	return spans
}
