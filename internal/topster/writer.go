package topster

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"topster-slicer/internal/boundary"
	"topster-slicer/internal/grid"
	topimage "topster-slicer/internal/image"
	"topster-slicer/internal/manifest"
	"topster-slicer/pkg/colorutil"
	"topster-slicer/pkg/geometry"
)

// Options controls a SliceFile run.
type Options struct {
	OutputDir string
	Naming    Naming

	// OverlayPath, when set, receives the source image with the detected
	// columns and rows drawn over it.
	OverlayPath    string
	OverlayBlend   topimage.BlendMode
	OverlayOpacity float64

	// WriteManifest stores a manifest.json beside the cells.
	WriteManifest bool

	Verbose bool
}

// Report describes one SliceFile run.
type Report struct {
	Source   string
	Width    int
	Height   int
	Cells    []grid.Cell
	Paths    []string // Paths[i] holds Cells[i]
	Manifest string   // empty unless a manifest was written
}

// SliceFile loads the topster at path, extracts its cells and writes one
// gray image per cell. On a write error the report lists the cells written
// before it.
func SliceFile(ctx context.Context, path string, opts Options) (*Report, error) {
	src, err := topimage.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		log.Printf("Loaded %s (%dx%d)", path, src.Width(), src.Height())
	}

	report := &Report{Source: path, Width: src.Width(), Height: src.Height()}
	if opts.Verbose {
		a := Analyze(src)
		logUnterminated(path, "column", a.ColumnProfile)
		logUnterminated(path, "row", a.RowProfile)
		report.Cells = a.Cells
	} else {
		report.Cells = Extract(src)
	}
	if len(report.Cells) == 0 {
		log.Printf("No grid cells detected in %s", path)
	}

	if opts.OverlayPath != "" {
		overlay := topimage.Overlay(src.Image, OverlayBands(report.Cells), opts.OverlayBlend, opts.OverlayOpacity)
		if err := topimage.Save(overlay, opts.OverlayPath); err != nil {
			return report, fmt.Errorf("failed to write overlay: %w", err)
		}
	}

	report.Paths, err = WriteCells(ctx, report.Cells, opts)
	if err != nil {
		return report, err
	}

	if opts.WriteManifest {
		manifestPath := filepath.Join(opts.OutputDir, manifest.FileName)
		m := manifest.New(manifestPath, path, report.Width, report.Height)
		for i, c := range report.Cells {
			m.Add(manifestPath, report.Paths[i], c)
		}
		if err := m.Save(manifestPath); err != nil {
			return report, fmt.Errorf("failed to write manifest: %w", err)
		}
		report.Manifest = manifestPath
	}
	return report, nil
}

func logUnterminated(path, axis string, profile []float64) {
	if boundary.Unterminated(profile) {
		log.Printf("%s: trailing %s run dropped (last profile value %g)", path, axis, profile[len(profile)-1])
	}
}

// WriteCells writes each cell as a gray image under opts.OutputDir. It stops
// at the first error or when ctx is done, returning the paths written so far.
func WriteCells(ctx context.Context, cells []grid.Cell, opts Options) ([]string, error) {
	naming := opts.Naming
	if naming == (Naming{}) {
		naming = DefaultNaming()
	}

	written := make([]string, 0, len(cells))
	for _, c := range cells {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		bounds := c.Bounds()
		if !bounds.IsSquare() {
			log.Printf("Cell column %d row %d is not square: %s", c.Column, c.Row, bounds)
		}

		path := naming.Path(opts.OutputDir, c)
		if err := topimage.Save(topimage.ToGray(c.Matrix), path); err != nil {
			return written, err
		}
		if opts.Verbose {
			log.Printf("Wrote %s (%s)", path, bounds)
		}
		written = append(written, path)
	}
	return written, nil
}

// OverlayBands returns one band per distinct column span and row span of
// cells, for drawing over the source image.
func OverlayBands(cells []grid.Cell) []topimage.Band {
	var bands []topimage.Band
	seenCol := make(map[int]bool)
	seenRow := make(map[int]bool)
	for _, c := range cells {
		b := c.Bounds()
		if !seenCol[c.Column] {
			seenCol[c.Column] = true
			bands = append(bands, topimage.Band{
				Rect:  geometry.RectInt{X: b.X, Y: 0, Width: b.Width, Height: 1 << 30},
				Color: colorutil.Cyan,
			})
		}
		if !seenRow[c.Row] {
			seenRow[c.Row] = true
			bands = append(bands, topimage.Band{
				Rect:  geometry.RectInt{X: 0, Y: b.Y, Width: 1 << 30, Height: b.Height},
				Color: colorutil.Magenta,
			})
		}
	}
	return bands
}
