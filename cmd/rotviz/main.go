package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"so3kit/internal/batch"
	"so3kit/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Number of frames for one full turn (default: 72)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 512)")
	points := flag.Int("points", 0, "Points on the sphere (default: 800)")
	seed := flag.Uint64("seed", 0, "Random seed (default: 1)")
	format := flag.String("format", "", "Output format: webp or tga (default: webp)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

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
		OutputDir: *outputDir,
		Frames:    *frames,
		Size:      *size,
		Points:    *points,
		Seed:      *seed,
		Format:    *format,
		Workers:   *workers,
	})

	if cfg.Format != "webp" && cfg.Format != "tga" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want webp or tga)\n", cfg.Format)
		os.Exit(1)
	}

	fmt.Printf("SO(3) tumble renderer → %s\n", cfg.Format)
	fmt.Printf("Frames: %d, Points: %d, Size: %d, Seed: %d, Workers: %d\n",
		cfg.Frames, cfg.Points, cfg.Size, cfg.Seed, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Frames:      cfg.Frames,
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		Points:      cfg.Points,
		Workers:     cfg.Workers,
		Format:      cfg.Format,
		Seed:        cfg.Seed,
	})

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Fprintf(os.Stderr, "  frame %d: %s\n", r.Frame, r.Error)
		}
	}
	if failed > 0 {
		fmt.Printf("Rendered %d/%d frames (%d failed)\n", len(results)-failed, len(results), failed)
		os.Exit(1)
	}
	fmt.Printf("Rendered %d frames\n", len(results))
}
