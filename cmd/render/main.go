// Command render writes the spine flexion animation as numbered WebP frames
// plus a manifest.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"spine-flexion-renderer/internal/batch"
	"spine-flexion-renderer/internal/config"
	"spine-flexion-renderer/internal/logging"
	"spine-flexion-renderer/internal/texture"
)

var errFramesFailed = errors.New("some frames failed to render")

// logOutput receives all log records.
var logOutput io.Writer = os.Stderr

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		limit      int
		flags      config.Flags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the cervical spine flexion animation to WebP frames",
		Long: `Render samples the spine animation at a fixed frame rate and writes
<output>/<scene>/frame_NNNN.webp for every frame together with a
manifest.json describing the flexion and highlighted vertebrae per frame.

Settings are read from an optional JSON/YAML config file, then SPINE_*
environment variables (a .env file is honoured), then flags.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, flags, limit)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "Config file path (JSON or YAML)")
	f.StringVar(&flags.EnvFile, "env-file", "", "dotenv file (default: ./.env if present)")
	f.StringVarP(&flags.Scene, "scene", "s", "", "Scene to render: hero or anatomy (default: hero)")
	f.StringVarP(&flags.OutputDir, "output", "o", "", "Output directory (default: renders)")
	f.StringVar(&flags.BackdropDir, "backdrops", "", "Directory of backdrop images (png/tga/jpg)")
	f.StringVar(&flags.Backdrop, "backdrop", "", "Backdrop name (default: the scene's environment)")
	f.IntVar(&flags.Size, "size", 0, "Output size in pixels (default: 256)")
	f.IntVar(&flags.Supersample, "supersample", 0, "Supersampling factor (default: 2)")
	f.Float64Var(&flags.FPS, "fps", 0, "Frames per second (default: 30)")
	f.Float64Var(&flags.Duration, "duration", 0, "Clip length in seconds (default: one flexion period)")
	f.IntVarP(&flags.Workers, "workers", "w", 0, "Number of worker goroutines (default: NumCPU)")
	f.BoolVar(&flags.HideLabels, "no-labels", false, "Do not draw vertebra labels")
	f.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.StringVar(&flags.LogFormat, "log-format", "", "Log format (text, json)")
	f.IntVar(&limit, "test", 0, "Render only the first N frames for testing")

	return cmd
}

func run(ctx context.Context, configPath string, flags config.Flags, limit int) error {
	var cfg config.Config
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	warnings := cfg.Resolve(flags)

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	logging.Init(logOutput, level, format)
	for _, w := range warnings {
		slog.Warn("config warning", "err", w)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	frames := batch.Frames(cfg.FPS, cfg.Duration)
	if limit > 0 && limit < len(frames) {
		frames = frames[:limit]
	}

	bcfg := batch.Config{
		Scene:       cfg.Scene,
		OutputDir:   cfg.OutputDir,
		Width:       cfg.RenderSize,
		Height:      cfg.RenderSize,
		Supersample: cfg.Supersample,
		FPS:         cfg.FPS,
		Workers:     cfg.Workers,
		HideLabels:  cfg.HideLabels,
		Backdrop:    cfg.Backdrop,
	}
	if cfg.BackdropDir != "" {
		idx := texture.BuildIndex(cfg.BackdropDir)
		bcfg.Backdrops = texture.NewCache(idx)
		slog.Info("backdrops indexed", "dir", cfg.BackdropDir, "count", idx.Len())
	}

	slog.Info("rendering",
		"scene", cfg.Scene,
		"frames", len(frames),
		"fps", cfg.FPS,
		"size", cfg.RenderSize,
		"supersample", cfg.Supersample,
		"workers", cfg.Workers,
		"output", cfg.OutputDir)

	start := time.Now()
	results, runErr := batch.Run(ctx, bcfg, frames)
	if results == nil {
		return runErr
	}

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
			continue
		}
		failed++
		if failed <= 20 {
			slog.Error("frame failed", "index", r.Index, "elapsed", r.Elapsed, "err", r.Error)
		}
	}
	slog.Info("done",
		"rendered", success,
		"total", len(results),
		"failed", failed,
		"seconds", time.Since(start).Seconds())

	// Write manifest
	sceneDir := filepath.Join(cfg.OutputDir, cfg.Scene)
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	m := batch.NewManifest(bcfg, results)
	manifestPath := filepath.Join(sceneDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, m); err != nil {
		slog.Warn("manifest write failed", "path", manifestPath, "err", err)
	} else {
		slog.Info("manifest written", "path", manifestPath, "run_id", m.RunID)
	}

	if runErr != nil {
		return runErr
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFramesFailed, failed, len(results))
	}
	return nil
}
