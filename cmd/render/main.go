package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"f-mesh-renderer/internal/batch"
	"f-mesh-renderer/internal/config"
	"f-mesh-renderer/internal/raster"
	"f-mesh-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	mode := flag.String("mode", "", "Projection: pixel or perspective (default: pixel)")
	width := flag.Int("width", 0, "Output width in pixels (default: 800)")
	height := flag.Int("height", 0, "Output height in pixels (default: 600)")
	frames := flag.Int("frames", 0, "Number of animation frames (default: 1)")
	orbit := flag.Float64("orbit", 0, "Degrees swept across all frames (default: 360 when frames > 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Image format: webp, png or tga (default: webp)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Mode:      *mode,
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		OrbitDeg:  *orbit,
		OutputDir: *outputDir,
		Format:    *format,
		Workers:   *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sc, err := scene.New(cfg.SceneParams())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	opts := raster.Options{CullBackFaces: *cfg.Cull}
	if cfg.Lighting {
		lc := raster.DefaultLightConfig()
		opts.Light = &lc
	}

	fmt.Printf("Letter F renderer (%s, %dx%d) → %s\n", cfg.Mode, cfg.Width, cfg.Height, cfg.Format)
	fmt.Printf("Frames: %d, Workers: %d, Supersample: %dx\n", cfg.Frames, cfg.Workers, cfg.Supersample)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	results := batch.Run(batch.Config{
		Scene:       sc,
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		Frames:      cfg.Frames,
		OrbitDeg:    *cfg.OrbitDeg,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Background:  cfg.BackgroundColor(),
		Raster:      opts,
	})

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed, fallback := 0, 0, 0
	var stats raster.Stats
	var errors []batch.Result
	for _, r := range results {
		stats.Add(r.Stats)
		if r.Fallback {
			fallback++
		}
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))
	fmt.Printf("Triangles: %d drawn, %d culled, %d clipped\n", stats.Drawn, stats.Culled, stats.Clipped)
	if fallback > 0 {
		fmt.Printf("Warning: %d frames used an identity view (camera not invertible)\n", fallback)
	}

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
