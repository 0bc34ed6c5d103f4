package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spine-flexion-renderer/internal/batch"
	"spine-flexion-renderer/internal/config"
)

func TestRunWritesFramesAndManifest(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	dir := t.TempDir()
	flags := config.Flags{
		EnvFile:     filepath.Join(dir, "missing.env"),
		Scene:       "anatomy",
		OutputDir:   dir,
		Size:        12,
		Supersample: 1,
		FPS:         10,
		Workers:     2,
		LogLevel:    "error",
	}
	require.NoError(t, run(context.Background(), "", flags, 3))

	data, err := os.ReadFile(filepath.Join(dir, "anatomy", "manifest.json"))
	require.NoError(t, err)

	var m batch.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "anatomy", m.Scene)
	assert.Equal(t, 10.0, m.FPS)
	require.Len(t, m.Frames, 3)
	assert.Equal(t, []string{"C1 (Atlas)", "C2 (Axis)", "C3"}, m.Frames[0].Highlighted)

	for _, f := range m.Frames {
		_, err := os.Stat(filepath.Join(dir, "anatomy", f.Image))
		assert.NoError(t, err)
	}
}

func TestRunConfigFile(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "render.yaml")
	body := "scene: hero\nrender_size: 8\nsupersample: 1\nfps: 4\nduration: 0.5\nlog_level: error\noutput_dir: " + dir + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0644))

	require.NoError(t, run(context.Background(), cfgPath, config.Flags{EnvFile: filepath.Join(dir, "missing.env")}, 0))

	entries, err := os.ReadDir(filepath.Join(dir, "hero"))
	require.NoError(t, err)
	assert.Len(t, entries, 3, "two frames plus manifest")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	err := run(context.Background(), "", config.Flags{EnvFile: filepath.Join(dir, "missing.env"), Scene: "lumbar"}, 0)
	assert.Error(t, err)

	err = run(context.Background(), filepath.Join(dir, "nope.json"), config.Flags{}, 0)
	assert.Error(t, err)
}

func TestRunLogsConfigWarningsWithConfiguredLogger(t *testing.T) {
	old, oldOut := slog.Default(), logOutput
	t.Cleanup(func() {
		slog.SetDefault(old)
		logOutput = oldOut
	})
	var buf bytes.Buffer
	logOutput = &buf

	t.Setenv("SPINE_WORKERS", "many")
	dir := t.TempDir()
	flags := config.Flags{
		EnvFile:   filepath.Join(dir, "missing.env"),
		Scene:     "lumbar",
		LogLevel:  "warn",
		LogFormat: "json",
	}
	require.Error(t, run(context.Background(), "", flags, 0))

	var records []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		records = append(records, rec)
	}
	require.Len(t, records, 2, "warnings are logged as JSON before validation fails")
	for _, rec := range records {
		assert.Equal(t, "config warning", rec["msg"])
		assert.Equal(t, "WARN", rec["level"])
	}
	assert.Contains(t, records[1]["err"], "SPINE_WORKERS")
}

func TestRootCmdFlags(t *testing.T) {
	cmd := rootCmd()
	for _, name := range []string{"config", "scene", "output", "size", "supersample", "fps", "duration", "workers", "no-labels", "backdrops", "test"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
