package batch

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ftrvxmtrx/tga"
	"github.com/golang/geo/r3"
	"golang.org/x/exp/rand"

	"github.com/HugoSmits86/nativewebp"

	"so3kit/internal/postprocess"
	"so3kit/internal/raster"
	"so3kit/so3"
)

// Config holds shared settings for one animation run.
type Config struct {
	OutputDir   string
	Frames      int
	Size        int
	Supersample int
	Points      int
	Workers     int
	Format      string // "webp" or "tga"
	Seed        uint64
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Run renders one full turn of a uniformly sampled orientation tumbling
// about a random axis, using a worker pool with one image per frame.
func Run(cfg Config) []Result {
	// All randomness comes from a single seeded source, consumed
	// sequentially here so workers never share it.
	src := rand.NewSource(cfg.Seed)
	base := so3.Random(src)
	spin := raster.SpherePoints(1, src)[0]
	points := raster.SpherePoints(cfg.Points, src)

	frames := make([]so3.Matrix, cfg.Frames)
	for i := range frames {
		theta := 2 * math.Pi * float64(i) / float64(cfg.Frames)
		frames[i] = so3.FromAxisAngle(so3.AxisAngle{Axis: spin, Theta: theta}).Mul(base)
	}

	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, points, frames[idx], idx)
				processed.Add(1)
			}
		}()
	}

	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, points []r3.Vector, m so3.Matrix, idx int) Result {
	img := raster.Render(points, m, cfg.Size, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Size)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.%s", idx, cfg.Format))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: idx, Path: outPath, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: idx, Path: outPath, Error: err.Error()}
	}
	defer f.Close()

	switch cfg.Format {
	case "tga":
		err = tga.Encode(f, img)
	default:
		err = nativewebp.Encode(f, img, nil)
	}
	if err != nil {
		return Result{Frame: idx, Path: outPath, Error: fmt.Sprintf("%s encode: %v", cfg.Format, err)}
	}

	return Result{Frame: idx, Path: outPath, Success: true}
}
