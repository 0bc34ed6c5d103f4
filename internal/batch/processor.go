package batch

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"spine-flexion-renderer/internal/render"
	"spine-flexion-renderer/internal/scene"
	"spine-flexion-renderer/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Scene       string
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	FPS         float64
	Workers     int
	HideLabels  bool
	Backdrops   texture.Resolver // shared; must be safe for concurrent use
	Backdrop    string
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index       int
	Elapsed     float64
	Flexion     float64
	Highlighted []string
	Image       string // path relative to the scene directory
	Success     bool
	Error       string
}

// Frames returns the elapsed times of a clip sampled at fps. At least one
// frame (t=0) is always returned.
func Frames(fps, duration float64) []float64 {
	n := 1
	if fps > 0 && duration > 0 {
		n = max(1, int(math.Round(duration*fps)))
	}
	out := make([]float64, n)
	for i := range out {
		if fps > 0 {
			out[i] = float64(i) / fps
		}
	}
	return out
}

// Run renders frames (elapsed seconds, indexed by position) using a worker
// pool. Every worker drives its own composer. Per-frame failures land in the
// results; the returned error is set only when the run could not start or
// ctx was cancelled, in which case undispatched frames are marked failed.
func Run(ctx context.Context, cfg Config, frames []float64) ([]Result, error) {
	if _, err := scene.PresetByName(cfg.Scene); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	workers := max(1, cfg.Workers)

	total := len(frames)
	results := make([]Result, total)
	dispatched := make([]bool, total)
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
					slog.Info("render progress",
						"scene", cfg.Scene,
						"done", p,
						"total", total,
						"frames_per_sec", float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comp := newComposer(cfg)
			for idx := range frameChan {
				results[idx] = renderFrame(comp, idx, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	var runErr error
dispatch:
	for i := range frames {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			break dispatch
		case frameChan <- i:
			dispatched[i] = true
		}
	}
	close(frameChan)

	wg.Wait()
	close(done)

	if runErr != nil {
		for i := range results {
			if !dispatched[i] {
				results[i] = Result{Index: i, Elapsed: frames[i], Error: runErr.Error()}
			}
		}
		slog.Warn("render cancelled", "scene", cfg.Scene, "done", processed.Load(), "total", total)
	}

	return results, runErr
}

func newComposer(cfg Config) *scene.Composer {
	// Scene name is validated by Run.
	preset, _ := scene.PresetByName(cfg.Scene)
	r := render.New(render.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		HideLabels:  cfg.HideLabels,
		Backdrops:   cfg.Backdrops,
		Backdrop:    cfg.Backdrop,
	}, FileSink{Dir: cfg.OutputDir})
	return scene.New(preset, r)
}

func renderFrame(comp *scene.Composer, index int, elapsed float64) Result {
	f, err := comp.TickAt(index, elapsed)
	res := Result{
		Index:       index,
		Elapsed:     elapsed,
		Flexion:     f.Spine.Flexion,
		Highlighted: f.Spine.HighlightedLabels(),
		Image:       FrameName(index),
	}
	if err != nil {
		res.Error = err.Error()
		slog.Debug("frame failed", "scene", f.Scene, "index", index, "err", err)
		return res
	}
	res.Success = true
	return res
}
