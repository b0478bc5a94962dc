package batch

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"f-mesh-renderer/internal/postprocess"
	"f-mesh-renderer/internal/raster"
	"f-mesh-renderer/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Scene       *scene.Scene
	OutputDir   string
	Format      string
	Frames      int
	OrbitDeg    float64 // total sweep across all frames
	Supersample int
	Workers     int
	Background  color.NRGBA
	Raster      raster.Options
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame    int
	AngleDeg float64
	Path     string
	MVP      [16]float32 // column-major, as uploaded to a shader uniform
	Stats    raster.Stats
	Fallback bool
	Success  bool
	Error    string
}

// FrameAngle returns the animation angle of frame i.
func (c Config) FrameAngle(i int) float64 {
	start := c.Scene.Params.CameraAngleDeg
	if c.Frames <= 1 {
		return start
	}
	return start + float64(i)*c.OrbitDeg/float64(c.Frames)
}

// Run renders all frames using a worker pool. Each worker owns its own
// framebuffer; the scene is only read.
func Run(cfg Config) []Result {
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

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, i int) Result {
	res := Result{Frame: i, AngleDeg: cfg.FrameAngle(i)}

	fr, err := cfg.Scene.Frame(res.AngleDeg)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.MVP = fr.MVP.Uniform()
	res.Fallback = fr.Fallback

	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := cfg.Scene.Params.Width, cfg.Scene.Params.Height

	fb := raster.NewFrameBuffer(w*ss, h*ss)
	fb.Clear(cfg.Background)
	res.Stats = raster.Draw(fb, cfg.Scene.Mesh, fr.Model, fr.ViewProjection, cfg.Raster)

	// Post-processing: supersample downsample
	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, w, h)
	}

	res.Path = filepath.Join(cfg.OutputDir, FrameName(i, cfg.Format))
	if err := WriteImage(res.Path, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// FrameName returns the file name of frame i.
func FrameName(i int, format string) string {
	return fmt.Sprintf("frame_%04d.%s", i, format)
}
