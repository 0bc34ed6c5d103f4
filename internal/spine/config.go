package spine

import (
	"errors"
	"fmt"
	"math"

	"spine-flexion-renderer/internal/mathutil"
)

var (
	// ErrInvalidCount is returned for a scene with no vertebrae.
	ErrInvalidCount = errors.New("vertebra count must be positive")
	// ErrLabelMismatch is returned when labels and count disagree.
	ErrLabelMismatch = errors.New("label count does not match vertebra count")
	// ErrPlacementMismatch is returned when hand placements and count disagree.
	ErrPlacementMismatch = errors.New("placement count does not match vertebra count")
)

// SceneConfig fixes the vertebrae of a scene and how their state is derived.
// Build it with NewSceneConfig; a constructed config is never mutated.
type SceneConfig struct {
	Name     string
	Count    int
	Labels   []string
	Animated bool

	// FixedFlexion is used by static scenes. nil means 0.
	FixedFlexion *float64
	// HighlightOverride, when set, replaces the highlight policy.
	HighlightOverride *bool
	// Placements, when set, replaces the procedural pose model with
	// hand-placed poses, one per vertebra.
	Placements []Pose
}

// SceneOption customizes a SceneConfig during construction.
type SceneOption func(*SceneConfig)

// WithAnimation marks the scene as driven by the flexion clock.
func WithAnimation() SceneOption {
	return func(c *SceneConfig) { c.Animated = true }
}

// WithFixedFlexion pins the flexion used by a static scene.
func WithFixedFlexion(f float64) SceneOption {
	return func(c *SceneConfig) { c.FixedFlexion = &f }
}

// WithHighlightOverride forces every vertebra's highlight flag.
func WithHighlightOverride(on bool) SceneOption {
	return func(c *SceneConfig) { c.HighlightOverride = &on }
}

// WithPlacements supplies hand-placed poses.
func WithPlacements(poses ...Pose) SceneOption {
	return func(c *SceneConfig) { c.Placements = poses }
}

// NewSceneConfig validates and builds a scene configuration. Labels are
// copied so later changes to the caller's slice cannot reorder the scene.
func NewSceneConfig(name string, count int, labels []string, opts ...SceneOption) (*SceneConfig, error) {
	if count <= 0 {
		return nil, fmt.Errorf("spine: scene %q: %d: %w", name, count, ErrInvalidCount)
	}
	if len(labels) != count {
		return nil, fmt.Errorf("spine: scene %q: %d labels for %d vertebrae: %w", name, len(labels), count, ErrLabelMismatch)
	}

	cfg := &SceneConfig{
		Name:   name,
		Count:  count,
		Labels: append([]string(nil), labels...),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Placements != nil {
		if len(cfg.Placements) != count {
			return nil, fmt.Errorf("spine: scene %q: %d placements for %d vertebrae: %w", name, len(cfg.Placements), count, ErrPlacementMismatch)
		}
		cfg.Placements = append([]Pose(nil), cfg.Placements...)
	}
	return cfg, nil
}

// StaticFlexion returns the flexion a non-animated scene is shown at.
func (c *SceneConfig) StaticFlexion() float64 {
	if c.FixedFlexion == nil {
		return 0
	}
	return ClampFlexion(*c.FixedFlexion)
}

// Scene names.
const (
	HeroScene    = "hero"
	AnatomyScene = "anatomy"
)

// HeroLabels are the vertebrae of the animated overview, C1 to T1.
var HeroLabels = []string{"C1", "C2", "C3", "C4", "C5", "C6", "C7", "T1"}

// AnatomyLabels are the vertebrae of the static close-up.
var AnatomyLabels = []string{"C1 (Atlas)", "C2 (Axis)", "C3"}

// AnatomyPlacements are the hand-composed close-up poses for AnatomyLabels.
var AnatomyPlacements = []Pose{
	{Position: mathutil.Vec3{0, 1, 0}, Rotation: mathutil.Vec3{0.2, math.Pi, 0}},
	{Position: mathutil.Vec3{0, 0.2, -0.1}, Rotation: mathutil.Vec3{0.1, math.Pi, 0}},
	{Position: mathutil.Vec3{0, -0.6, -0.15}, Rotation: mathutil.Vec3{0, math.Pi, 0}},
}

// HeroConfig returns the animated eight-vertebra scene.
func HeroConfig() *SceneConfig {
	cfg, err := NewSceneConfig(HeroScene, len(HeroLabels), HeroLabels, WithAnimation())
	if err != nil {
		panic(err)
	}
	return cfg
}

// AnatomyConfig returns the static, fully highlighted three-vertebra close-up.
func AnatomyConfig() *SceneConfig {
	cfg, err := NewSceneConfig(AnatomyScene, len(AnatomyLabels), AnatomyLabels,
		WithHighlightOverride(true),
		WithPlacements(AnatomyPlacements...),
	)
	if err != nil {
		panic(err)
	}
	return cfg
}

// ConfigByName returns one of the built-in scene configurations.
func ConfigByName(name string) (*SceneConfig, error) {
	switch name {
	case HeroScene:
		return HeroConfig(), nil
	case AnatomyScene:
		return AnatomyConfig(), nil
	}
	return nil, fmt.Errorf("spine: unknown scene %q", name)
}
