package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/plotmetric/plotarea/internal/config"
	"github.com/plotmetric/plotarea/internal/imaging"
	"github.com/plotmetric/plotarea/internal/pipeline"
	"github.com/plotmetric/plotarea/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("plotarea %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	input := flag.String("input", "", "Image file or directory of property map images")
	configPath := flag.String("config", "plotarea.yaml", "YAML configuration file (optional)")
	slack := flag.Int("slack", -1, "Crop padding around the region marker in pixels (-1: use config)")
	jump := flag.Int("jump", -1, "Scanline row stride, 1 = every row (-1: use config)")
	overlayDir := flag.String("overlay-dir", "", "Directory to write diagnostic overlay images (empty: use config)")
	verbose := flag.Bool("verbose", false, "Print per-image diagnostics")
	flag.Parse()

	// Logging goes to stderr; stdout carries only the measurements.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *input == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *slack >= 0 {
		cfg.Pipeline.Slack = *slack
	}
	if *jump >= 1 {
		cfg.Pipeline.Jump = *jump
	}
	if *overlayDir != "" {
		cfg.Output.OverlayDir = *overlayDir
	}
	if *verbose {
		cfg.Output.Verbose = true
	}

	paths, err := collectInputs(*input)
	if err != nil {
		log.Fatalf("Failed to enumerate inputs: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("No image files found under %s", *input)
	}

	if cfg.Output.OverlayDir != "" {
		if err := os.MkdirAll(cfg.Output.OverlayDir, 0755); err != nil {
			log.Fatalf("Failed to create overlay directory: %v", err)
		}
	}

	opts := pipeline.Options{
		Slack:      cfg.Pipeline.Slack,
		Jump:       cfg.Pipeline.Jump,
		Thresholds: cfg.Thresholds,
	}

	cache := imaging.NewImageCache()
	var boundaryAreas, interiorAreas []float64

	for _, path := range paths {
		img, err := cache.Load(path)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}

		res, err := pipeline.Run(img, opts)
		switch {
		case errors.Is(err, pipeline.ErrEmptyRegion):
			log.Printf("Skipping %s: no region marker found", path)
		case errors.Is(err, pipeline.ErrInsufficientRows):
			log.Printf("Skipping %s: %v (try a smaller -jump)", path, err)
		case err != nil:
			log.Printf("Skipping %s: %v", path, err)
		default:
			fmt.Printf("%s: boundary=%.1f px^2 interior=%.1f px^2\n",
				filepath.Base(path), res.BoundaryArea, res.InteriorArea)
			boundaryAreas = append(boundaryAreas, res.BoundaryArea)
			interiorAreas = append(interiorAreas, res.InteriorArea)

			if cfg.Output.Verbose {
				log.Printf("%s: region=%v boundaryRows=%d interiorRows=%d",
					filepath.Base(path), res.Region, res.BoundaryRows, res.InteriorRows)
			}
			if cfg.Output.OverlayDir != "" {
				if err := writeOverlay(cfg.Output.OverlayDir, path, img, res); err != nil {
					log.Printf("Overlay for %s failed: %v", path, err)
				}
			}
		}

		cache.Evict(path)
	}

	if len(boundaryAreas) > 1 {
		fmt.Printf("\nProcessed %d of %d images\n", len(boundaryAreas), len(paths))
		fmt.Printf("Boundary area: mean=%.1f stddev=%.1f px^2\n",
			stat.Mean(boundaryAreas, nil), stat.StdDev(boundaryAreas, nil))
		fmt.Printf("Interior area: mean=%.1f stddev=%.1f px^2\n",
			stat.Mean(interiorAreas, nil), stat.StdDev(interiorAreas, nil))
	}
}

// collectInputs expands the input argument into image paths: a directory
// yields its image files, a single file is passed through as-is.
func collectInputs(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return imaging.ListImages(input)
	}
	return []string{input}, nil
}

// writeOverlay renders the diagnostic overlay for one processed map into
// dir, named after the source file.
func writeOverlay(dir, srcPath string, img image.Image, res *pipeline.Result) error {
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	overlay := render.Overlay(img, res.Region, res.BoundaryPolygon, res.InteriorPolygon)
	return render.Save(overlay, filepath.Join(dir, base+"_overlay.png"))
}
