// Package grid carves a topster's base matrix into one cell per detected
// column and row.
//
// Every column is cut with the same row intervals, so the grid is assumed
// to be regular: covers are square and rows line up across columns. A
// topster whose rows drift between columns is cut wrongly, not rejected.
package grid

import (
	"topster-slicer/internal/boundary"
	"topster-slicer/internal/matrix"
	"topster-slicer/pkg/geometry"
)

// Cell is one extracted grid cell.
type Cell struct {
	Column  int              // index of the column section
	Row     int              // index of the row interval
	Columns boundary.Section // x span in the base matrix
	Rows    boundary.Section // y span in the base matrix
	Matrix  *matrix.Matrix
}

// Bounds returns the cell's rectangle in base-matrix coordinates.
func (c Cell) Bounds() geometry.RectInt {
	return geometry.NewRectInt(c.Columns.Start, c.Columns.End, c.Rows.Start, c.Rows.End)
}

// Segment cuts base into cells, column-major: all rows of column 0 first.
// Empty sections and sections reaching past base are skipped, so no cell is
// ever produced from them. No sections on either axis yields no cells.
func Segment(base *matrix.Matrix, columns, rows []boundary.Section) []Cell {
	var cells []Cell
	for ci, col := range columns {
		if !fits(col, base.Width()) {
			continue
		}
		strip := base.SliceX(col.Start, col.End)
		for ri, row := range rows {
			if !fits(row, base.Height()) {
				continue
			}
			cells = append(cells, Cell{
				Column:  ci,
				Row:     ri,
				Columns: col,
				Rows:    row,
				Matrix:  strip.SliceY(row.Start, row.End),
			})
		}
	}
	return cells
}

func fits(s boundary.Section, size int) bool {
	return !s.Empty() && s.Start >= 0 && s.End <= size
}
