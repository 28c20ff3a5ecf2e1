// Package main provides the entry point for topster-slicer, which cuts a
// topster grid image into one image per album cover.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	topimage "topster-slicer/internal/image"
	"topster-slicer/internal/prefs"
	"topster-slicer/internal/topster"
	"topster-slicer/internal/version"
)

const appName = "topster-slicer"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	prefsPath := flag.String("prefs", "", "Preferences file (default "+prefs.DefaultPath()+")")
	outDir := flag.String("o", "", "Output directory (default \"out\")")
	prefix := flag.String("prefix", "", "Output file name prefix (default \"topster\")")
	format := flag.String("format", "", "Output format extension: png, jpg, gif, bmp or tiff (default png)")
	overlay := flag.String("overlay", "", "Also write the source with the detected grid drawn over it")
	blend := flag.String("blend", "", "Overlay blend mode: Normal, Multiply, Screen, Overlay, Difference")
	opacity := flag.Float64("opacity", -1, "Overlay opacity 0-1 (default 0.35)")
	writeManifest := flag.Bool("manifest", true, "Write manifest.json describing the cells")
	verbose := flag.Bool("v", false, "Log every written cell")
	savePrefs := flag.Bool("save-prefs", false, "Store the given options as the new defaults")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <topster image>...\n", appName)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String(appName))
		return
	}

	p, err := prefs.Load(*prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load preferences: %v\n", err)
		os.Exit(1)
	}

	opts := topster.Options{
		OutputDir: firstNonEmpty(*outDir, p.StringWithFallback(prefs.KeyOutputDir, "out")),
		Naming: topster.Naming{
			Prefix: firstNonEmpty(*prefix, p.StringWithFallback(prefs.KeyPrefix, "topster")),
			Ext:    normalizeExt(firstNonEmpty(*format, p.StringWithFallback(prefs.KeyFormat, ".png"))),
		},
		OverlayBlend:   topimage.ParseBlendMode(firstNonEmpty(*blend, p.StringWithFallback(prefs.KeyOverlayBlend, "Normal"))),
		OverlayOpacity: *opacity,
		WriteManifest:  *writeManifest,
		Verbose:        *verbose || p.Bool(prefs.KeyVerbose, false),
	}
	if opts.OverlayOpacity < 0 {
		opts.OverlayOpacity = p.FloatWithFallback(prefs.KeyOverlayOpacity, 0.35)
	}
	if !topimage.IsWritableFormat("cell" + opts.Naming.Ext) {
		fmt.Fprintf(os.Stderr, "Unsupported output format %q\n", opts.Naming.Ext)
		os.Exit(1)
	}

	if *savePrefs {
		p.SetString(prefs.KeyOutputDir, opts.OutputDir)
		p.SetString(prefs.KeyPrefix, opts.Naming.Prefix)
		p.SetString(prefs.KeyFormat, opts.Naming.Ext)
		p.SetString(prefs.KeyOverlayBlend, opts.OverlayBlend.String())
		p.SetFloat(prefs.KeyOverlayOpacity, opts.OverlayOpacity)
		p.SetBool(prefs.KeyVerbose, opts.Verbose)
		if err := p.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save preferences: %v\n", err)
			os.Exit(1)
		}
		log.Printf("Saved preferences to %s", p.Path())
	}

	if flag.NArg() < 1 {
		if *savePrefs {
			return
		}
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := false
	for _, input := range flag.Args() {
		runOpts := opts
		// Several inputs share cell names, so give each its own directory.
		if flag.NArg() > 1 {
			base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			runOpts.OutputDir = filepath.Join(opts.OutputDir, base)
		}
		if *overlay != "" {
			runOpts.OverlayPath = *overlay
			if flag.NArg() > 1 {
				runOpts.OverlayPath = filepath.Join(runOpts.OutputDir, filepath.Base(*overlay))
			}
		}

		report, err := topster.SliceFile(ctx, input, runOpts)
		if err != nil {
			log.Printf("%s: %v", input, err)
			failed = true
			if ctx.Err() != nil {
				break
			}
			continue
		}
		log.Printf("%s: wrote %d covers to %s", input, len(report.Paths), runOpts.OutputDir)
	}

	if failed {
		os.Exit(1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// normalizeExt turns "png", ".PNG" or "PNG" into ".png".
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
