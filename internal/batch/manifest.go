package batch

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"

	"spine-flexion-renderer/internal/render"
	"spine-flexion-renderer/internal/spine"
)

// Manifest describes one rendered clip.
type Manifest struct {
	RunID  string          `json:"run_id"`
	Scene  string          `json:"scene"`
	FPS    float64         `json:"fps"`
	Period float64         `json:"period"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Frames []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index       int      `json:"index"`
	Elapsed     float64  `json:"elapsed"`
	Flexion     float64  `json:"flexion"`
	Highlighted []string `json:"highlighted"`
	Image       string   `json:"image"`
}

// NewManifest builds a manifest from the successful results of a run.
func NewManifest(cfg Config, results []Result) Manifest {
	m := Manifest{
		RunID:  uuid.NewString(),
		Scene:  cfg.Scene,
		FPS:    cfg.FPS,
		Period: spine.Period,
		Width:  cfg.Width,
		Height: cfg.Height,
		Frames: []ManifestEntry{},
	}
	// Same defaults the renderer applies.
	if m.Width <= 0 {
		m.Width = render.DefaultSize
	}
	if m.Height <= 0 {
		m.Height = m.Width
	}
	for _, r := range results {
		if !r.Success {
			continue
		}
		hl := r.Highlighted
		if hl == nil {
			hl = []string{}
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Index:       r.Index,
			Elapsed:     r.Elapsed,
			Flexion:     r.Flexion,
			Highlighted: hl,
			Image:       r.Image,
		})
	}
	return m
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
