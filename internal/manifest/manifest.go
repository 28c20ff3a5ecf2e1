// Package manifest records which cells were cut from a topster and where
// they were written.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"topster-slicer/internal/grid"
	"topster-slicer/pkg/geometry"
)

// FileName is the manifest's name inside an output directory.
const FileName = "manifest.json"

// File is an extraction manifest. Paths are stored relative to the
// manifest's directory when possible.
type File struct {
	Version int       `json:"version"`
	Created time.Time `json:"created"`
	Source  string    `json:"source"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Cells   []Entry   `json:"cells"`
}

// Entry describes one written cell.
type Entry struct {
	File   string           `json:"file"`
	Column int              `json:"column"`
	Row    int              `json:"row"`
	Bounds geometry.RectInt `json:"bounds"`
}

// New creates an empty manifest for a source image.
func New(manifestPath, source string, width, height int) *File {
	return &File{
		Version: 1,
		Created: time.Now().UTC(),
		Source:  relative(manifestPath, source),
		Width:   width,
		Height:  height,
	}
}

// Add records cell c as written to path.
func (f *File) Add(manifestPath, path string, c grid.Cell) {
	f.Cells = append(f.Cells, Entry{
		File:   relative(manifestPath, path),
		Column: c.Column,
		Row:    c.Row,
		Bounds: c.Bounds(),
	})
}

// Load loads a manifest from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &f, nil
}

// Save writes the manifest to path.
func (f *File) Save(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SourcePath returns the absolute path to the source image.
func (f *File) SourcePath(manifestPath string) string {
	return resolve(manifestPath, f.Source)
}

// CellPath returns the absolute path of cell entry i.
func (f *File) CellPath(manifestPath string, i int) string {
	return resolve(manifestPath, f.Cells[i].File)
}

func relative(manifestPath, path string) string {
	rel, err := filepath.Rel(filepath.Dir(manifestPath), path)
	if err != nil {
		return path
	}
	return rel
}

func resolve(manifestPath, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(manifestPath), path)
}
