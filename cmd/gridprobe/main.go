// Command gridprobe runs grid detection on a topster and prints what it
// found, optionally dumping intermediate matrices and profile charts.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"topster-slicer/internal/boundary"
	topimage "topster-slicer/internal/image"
	"topster-slicer/internal/matrix"
	"topster-slicer/internal/profileplot"
	"topster-slicer/internal/topster"
	"topster-slicer/internal/version"
)

func main() {
	input := flag.String("i", "", "Path to topster image")
	dumpDir := flag.String("dump", "", "Write grayscale and gradient matrices as images to this directory")
	plotDir := flag.String("plot", "", "Write gradient profile charts to this directory")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("gridprobe"))
		return
	}
	if *input == "" {
		fmt.Println("Usage: gridprobe -i <topster> [-dump <dir>] [-plot <dir>]")
		os.Exit(1)
	}

	src, err := topimage.Load(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", *input, err)
		os.Exit(1)
	}
	fmt.Printf("=== %s: %dx%d ===\n", *input, src.Width(), src.Height())

	a := topster.Analyze(src)

	fmt.Printf("\n=== Columns ===\n")
	printSections(a.ColumnSections, a.ColumnSpans, a.ColumnProfile)
	fmt.Printf("\n=== Rows ===\n")
	printSections(a.RowSections, a.RowSpans, a.RowProfile)

	fmt.Printf("\n=== Cells (%d) ===\n", len(a.Cells))
	for _, c := range a.Cells {
		square := ""
		if !c.Bounds().IsSquare() {
			square = "  (not square)"
		}
		fmt.Printf("  col %d row %d: %s  %d px%s\n", c.Column, c.Row, c.Bounds(), c.Bounds().Area(), square)
	}

	if *dumpDir != "" {
		if err := dump(*dumpDir, a); err != nil {
			fmt.Fprintf(os.Stderr, "Dump failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nMatrices written to %s\n", *dumpDir)
	}

	if *plotDir != "" {
		if err := plot(*plotDir, a); err != nil {
			fmt.Fprintf(os.Stderr, "Plot failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Profile charts written to %s\n", *plotDir)
	}
}

func printSections(sections, spans []boundary.Section, profile []float64) {
	fmt.Printf("Profile length: %d, sections: %d, cell spans: %d\n", len(profile), len(sections), len(spans))
	for _, s := range sections {
		fmt.Printf("  %s  len=%d  first=%.4g last=%.4g\n", s, s.Len(), profile[s.Start], profile[s.End-1])
	}
	if boundary.Unterminated(profile) {
		fmt.Printf("  trailing run still open at index %d, dropped\n", len(profile)-1)
	}
	for i, s := range spans {
		fmt.Printf("  cell %d: %s\n", i, s)
	}
}

func dump(dir string, a *topster.Analysis) error {
	images := []struct {
		name   string
		m      *matrix.Matrix
		scaled bool
	}{
		{"base.png", a.Base, false},
		{"blurred.png", a.Blurred, false},
		{"sobel_x_columns.png", a.ColumnGradient, true},
		{"sobel_x_rows.png", a.RowGradient.Transpose(), true},
		{"sobel_y.png", a.SobelY, true},
	}
	for _, img := range images {
		gray := topimage.ToGray(img.m)
		if img.scaled {
			gray = topimage.ToGrayScaled(img.m)
		}
		if err := topimage.Save(gray, filepath.Join(dir, img.name)); err != nil {
			return err
		}
	}
	return nil
}

func plot(dir string, a *topster.Analysis) error {
	if err := profileplot.Save(filepath.Join(dir, "columns.png"), "Column profile (Sobel-X)", a.ColumnProfile, a.ColumnSections); err != nil {
		return err
	}
	if err := profileplot.Save(filepath.Join(dir, "rows.png"), "Row profile (Sobel-X, transposed)", a.RowProfile, a.RowSections); err != nil {
		return err
	}
	sobelY := boundary.RowProfile(a.SobelY)
	return profileplot.Save(filepath.Join(dir, "rows_sobel_y.png"), "Row profile (Sobel-Y)", sobelY, boundary.Sections(sobelY))
}
