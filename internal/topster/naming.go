package topster

import (
	"fmt"
	"path/filepath"

	"topster-slicer/internal/grid"
)

// Naming builds output filenames of the form
// {Prefix}{rowstart}-{rowend}-{column}{Ext}.
type Naming struct {
	Prefix string
	Ext    string
}

// DefaultNaming returns the topster{rowstart}-{rowend}-{column}.png scheme.
func DefaultNaming() Naming {
	return Naming{Prefix: "topster", Ext: ".png"}
}

// Filename returns the file name for c.
func (n Naming) Filename(c grid.Cell) string {
	return fmt.Sprintf("%s%d-%d-%d%s", n.Prefix, c.Rows.Start, c.Rows.End, c.Column, n.Ext)
}

// Path joins dir and the file name for c.
func (n Naming) Path(dir string, c grid.Cell) string {
	return filepath.Join(dir, n.Filename(c))
}
