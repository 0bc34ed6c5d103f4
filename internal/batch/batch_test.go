package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spine-flexion-renderer/internal/scene"
	"spine-flexion-renderer/internal/spine"
)

func TestFrames(t *testing.T) {
	f := Frames(30, 1)
	require.Len(t, f, 30)
	assert.Equal(t, 0.0, f[0])
	assert.InDelta(t, 1.0/30, f[1], 1e-12)

	assert.Equal(t, []float64{0}, Frames(0, 5))
	assert.Equal(t, []float64{0}, Frames(10, 0.01))
	assert.Len(t, Frames(30, spine.Period), 377)
}

func TestFileSinkPath(t *testing.T) {
	s := FileSink{Dir: "out"}
	assert.Equal(t, filepath.Join("out", "hero", "frame_0007.webp"), s.Path(scene.Frame{Scene: "hero", Index: 7}))
}

func TestRunUnknownScene(t *testing.T) {
	_, err := Run(context.Background(), Config{Scene: "lumbar"}, []float64{0})
	assert.Error(t, err)
}

func TestRunWritesFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Scene: spine.HeroScene, OutputDir: dir, Width: 16, Supersample: 1, FPS: 2, Workers: 2}
	frames := Frames(2, 2)

	results, err := Run(context.Background(), cfg, frames)
	require.NoError(t, err)
	require.Len(t, results, len(frames))

	for i, r := range results {
		require.True(t, r.Success, r.Error)
		assert.Equal(t, i, r.Index)
		assert.Equal(t, spine.ClampFlexion(spine.FlexionAt(frames[i])), r.Flexion)

		data, err := os.ReadFile(filepath.Join(dir, spine.HeroScene, r.Image))
		require.NoError(t, err)
		require.Greater(t, len(data), 12)
		assert.True(t, bytes.Equal(data[0:4], []byte("RIFF")))
		assert.True(t, bytes.Equal(data[8:12], []byte("WEBP")))
	}
}

func TestRunAnatomyIsStatic(t *testing.T) {
	cfg := Config{Scene: spine.AnatomyScene, OutputDir: t.TempDir(), Width: 8, Workers: 1}
	results, err := Run(context.Background(), cfg, []float64{0, 1, 2})
	require.NoError(t, err)
	for _, r := range results {
		assert.True(t, r.Success)
		assert.Equal(t, results[0].Flexion, r.Flexion)
		assert.Equal(t, results[0].Highlighted, r.Highlighted)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{Scene: spine.HeroScene, OutputDir: t.TempDir(), Width: 8, Workers: 1}
	results, err := Run(ctx, cfg, []float64{0, 0.5, 1})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.NotEmpty(t, r.Error)
	}
}

func TestManifest(t *testing.T) {
	cfg := Config{Scene: spine.HeroScene, FPS: 30, Width: 64}
	results := []Result{
		{Index: 0, Elapsed: 0, Flexion: 0.5, Image: FrameName(0), Success: true},
		{Index: 1, Elapsed: 1.0 / 30, Error: "boom"},
		{Index: 2, Elapsed: 2.0 / 30, Flexion: 0.9, Highlighted: []string{"C1", "C2"}, Image: FrameName(2), Success: true},
	}

	m := NewManifest(cfg, results)
	_, err := uuid.Parse(m.RunID)
	require.NoError(t, err)
	assert.Equal(t, 64, m.Height)
	require.Len(t, m.Frames, 2)
	assert.Equal(t, []string{}, m.Frames[0].Highlighted)
	assert.Equal(t, 2, m.Frames[1].Index)

	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, WriteManifest(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, m.RunID, got["run_id"])
	assert.Equal(t, "hero", got["scene"])
	assert.Len(t, got["frames"], 2)
}

func TestManifestDefaultsSize(t *testing.T) {
	m := NewManifest(Config{Scene: spine.HeroScene}, nil)
	assert.Equal(t, 256, m.Width)
	assert.Equal(t, 256, m.Height)

	m = NewManifest(Config{Scene: spine.HeroScene, Width: 40, Height: 30}, nil)
	assert.Equal(t, 40, m.Width)
	assert.Equal(t, 30, m.Height)
}
