// Package profileplot renders gradient profiles and their detected sections
// as charts.
package profileplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"topster-slicer/internal/boundary"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	profileColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	sectionColor = color.RGBA{R: 0, G: 160, B: 220, A: 80}
)

// Points converts a profile to plot coordinates (index, value).
func Points(profile []float64) plotter.XYs {
	pts := make(plotter.XYs, len(profile))
	for i, v := range profile {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}
	return pts
}

// Chart builds a plot of profile with each section shaded across the full
// value range.
func Chart(title string, profile []float64, sections []boundary.Section) (*plot.Plot, error) {
	if len(profile) == 0 {
		return nil, fmt.Errorf("empty profile")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Index"
	p.Y.Label.Text = "Mean gradient"
	p.Add(plotter.NewGrid())

	lo, hi := floats.Min(profile), floats.Max(profile)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	for _, s := range sections {
		shade, err := plotter.NewPolygon(plotter.XYs{
			{X: float64(s.Start), Y: lo},
			{X: float64(s.End), Y: lo},
			{X: float64(s.End), Y: hi},
			{X: float64(s.Start), Y: hi},
		})
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", s, err)
		}
		shade.Color = sectionColor
		shade.LineStyle.Width = 0
		p.Add(shade)
	}

	line, err := plotter.NewLine(Points(profile))
	if err != nil {
		return nil, fmt.Errorf("failed to create line: %w", err)
	}
	line.Color = profileColor
	line.Width = vg.Points(1)
	p.Add(line)

	return p, nil
}

// Save writes the chart to path; the format follows the extension.
func Save(path, title string, profile []float64, sections []boundary.Section) error {
	p, err := Chart(title, profile, sections)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create plot directory: %w", err)
	}
	if err := p.Save(12*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}
	return nil
}
