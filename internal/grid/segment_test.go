package grid

import (
	"testing"

	"topster-slicer/internal/boundary"
	"topster-slicer/internal/matrix"
	"topster-slicer/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ramp returns a matrix whose value encodes its own coordinates.
func ramp(w, h int) *matrix.Matrix {
	m := matrix.New(w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			m.Set(x, y, float64(x*1000+y))
		}
	}
	return m
}

// viaTranspose cuts a cell by slicing the column strip, transposing it so
// rows lead, slicing the row interval and transposing back.
func viaTranspose(base *matrix.Matrix, col, row boundary.Section) *matrix.Matrix {
	strip := base.SliceX(col.Start, col.End)
	rotated := strip.Transpose()
	cut := rotated.SliceX(row.Start, row.End)
	return cut.Transpose().Transpose().Transpose()
}

func TestSegment(t *testing.T) {
	base := ramp(12, 9)
	columns := []boundary.Section{{Start: 1, End: 4}, {Start: 6, End: 9}}
	rows := []boundary.Section{{Start: 0, End: 3}, {Start: 5, End: 8}}

	cells := Segment(base, columns, rows)
	require.Len(t, cells, 4)

	order := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, c := range cells {
		assert.Equal(t, order[i][0], c.Column)
		assert.Equal(t, order[i][1], c.Row)
		assert.Equal(t, 3, c.Matrix.Width())
		assert.Equal(t, 3, c.Matrix.Height())
		assert.True(t, c.Bounds().IsSquare())

		for x := 0; x < c.Matrix.Width(); x++ {
			for y := 0; y < c.Matrix.Height(); y++ {
				assert.Equal(t, base.At(c.Columns.Start+x, c.Rows.Start+y), c.Matrix.At(x, y))
			}
		}
	}

	assert.Equal(t, geometry.RectInt{X: 6, Y: 5, Width: 3, Height: 3}, cells[3].Bounds())
}

func TestSegmentMatchesTransposeRoute(t *testing.T) {
	base := ramp(10, 7)
	col := boundary.Section{Start: 2, End: 8}
	row := boundary.Section{Start: 1, End: 5}

	cells := Segment(base, []boundary.Section{col}, []boundary.Section{row})
	require.Len(t, cells, 1)

	want := viaTranspose(base, col, row)
	require.Equal(t, want.Width(), cells[0].Matrix.Width())
	require.Equal(t, want.Height(), cells[0].Matrix.Height())
	assert.True(t, want.Equal(cells[0].Matrix))
	assert.True(t, base.Region(cells[0].Bounds()).Equal(cells[0].Matrix))
}

func TestSegmentNoSections(t *testing.T) {
	base := ramp(4, 4)
	assert.Empty(t, Segment(base, nil, []boundary.Section{{Start: 0, End: 2}}))
	assert.Empty(t, Segment(base, []boundary.Section{{Start: 0, End: 2}}, nil))
}

func TestSegmentSkipsUnusableSections(t *testing.T) {
	base := ramp(6, 6)
	columns := []boundary.Section{{Start: 2, End: 2}, {Start: 1, End: 3}, {Start: 4, End: 9}}
	rows := []boundary.Section{{Start: 3, End: 1}, {Start: 0, End: 6}}

	cells := Segment(base, columns, rows)
	require.Len(t, cells, 1)
	assert.Equal(t, 1, cells[0].Column)
	assert.Equal(t, 1, cells[0].Row)
}

func TestCellsDoNotAliasBase(t *testing.T) {
	base := ramp(4, 4)
	cells := Segment(base, []boundary.Section{{Start: 0, End: 2}}, []boundary.Section{{Start: 0, End: 2}})
	require.Len(t, cells, 1)
	cells[0].Matrix.Set(0, 0, -1)
	assert.Equal(t, 0.0, base.At(0, 0))
}
