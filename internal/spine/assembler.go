package spine

import "math"

// Assemble builds the spine state of cfg at flexion. Out-of-range flexion is
// clamped first. Vertebrae are produced in index order.
func Assemble(cfg *SceneConfig, flexion float64) SpineState {
	f := ClampFlexion(flexion)
	states := make([]VertebraState, cfg.Count)
	for i := range states {
		var pose Pose
		if cfg.Placements != nil {
			pose = cfg.Placements[i]
		} else {
			pose = PoseAt(i, cfg.Count, f)
		}

		var highlighted bool
		if cfg.HighlightOverride != nil {
			highlighted = *cfg.HighlightOverride
		} else {
			highlighted = IsHighlighted(i, cfg.Count, f)
		}

		states[i] = VertebraState{
			Spec:        VertebraSpec{Index: i, Label: cfg.Labels[i]},
			Pose:        pose,
			Highlighted: highlighted,
		}
	}
	return SpineState{Flexion: f, Vertebrae: states}
}

// Assembler memoizes Assemble for one config, keeping only the last result.
// It is not safe for concurrent use; give each render loop its own.
type Assembler struct {
	cfg *SceneConfig

	valid   bool
	lastKey uint64
	last    SpineState
}

// NewAssembler returns an assembler bound to cfg.
func NewAssembler(cfg *SceneConfig) *Assembler {
	return &Assembler{cfg: cfg}
}

// Config returns the scene configuration this assembler is bound to.
func (a *Assembler) Config() *SceneConfig {
	return a.cfg
}

// Assemble returns the spine state at flexion, recomputing only when the
// clamped flexion differs from the previous call. The returned state is
// shared with the cache and must be treated as read-only.
func (a *Assembler) Assemble(flexion float64) SpineState {
	key := math.Float64bits(ClampFlexion(flexion))
	if a.valid && key == a.lastKey {
		return a.last
	}
	a.last = Assemble(a.cfg, flexion)
	a.lastKey = key
	a.valid = true
	return a.last
}

// Reset discards the cached state.
func (a *Assembler) Reset() {
	a.valid = false
	a.last = SpineState{}
}
