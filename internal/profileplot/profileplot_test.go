package profileplot

import (
	"os"
	"path/filepath"
	"testing"

	"topster-slicer/internal/boundary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	pts := Points([]float64{0, 2.5, -1})
	require.Len(t, pts, 3)
	assert.Equal(t, 1.0, pts[1].X)
	assert.Equal(t, 2.5, pts[1].Y)
	assert.Equal(t, -1.0, pts[2].Y)
}

func TestChart(t *testing.T) {
	_, err := Chart("empty", nil, nil)
	assert.Error(t, err)

	p, err := Chart("flat", []float64{0, 0, 0}, []boundary.Section{{Start: 1, End: 2}})
	require.NoError(t, err)
	assert.Equal(t, "flat", p.Title.Text)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "columns.png")
	profile := []float64{0, 0, 3, -2, 1, 0, 0, 4, 0}
	require.NoError(t, Save(path, "columns", profile, boundary.Sections(profile)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
