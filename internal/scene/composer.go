package scene

import (
	"context"
	"fmt"

	"spine-flexion-renderer/internal/mathutil"
	"spine-flexion-renderer/internal/spine"
)

// Composer turns elapsed time into spine state and hands it to a renderer.
// It owns no timers: the host calls Tick once per frame. A Composer is not
// safe for concurrent use.
type Composer struct {
	preset    Preset
	assembler *spine.Assembler
	renderer  Renderer
	next      int
}

// New returns a composer for preset. A nil renderer gives a headless
// composer that only produces data.
func New(p Preset, r Renderer) *Composer {
	return &Composer{
		preset:    p,
		assembler: spine.NewAssembler(p.Config),
		renderer:  r,
	}
}

// NewHero returns a composer for the animated hero scene.
func NewHero(r Renderer) *Composer { return New(HeroPreset(), r) }

// NewAnatomy returns a composer for the static anatomy close-up.
func NewAnatomy(r Renderer) *Composer { return New(AnatomyPreset(), r) }

// Config returns the scene configuration.
func (c *Composer) Config() *spine.SceneConfig { return c.preset.Config }

// Flexion returns the clamped flexion shown at elapsed seconds.
func (c *Composer) Flexion(elapsed float64) float64 {
	if !c.preset.Config.Animated {
		return c.preset.Config.StaticFlexion()
	}
	return spine.ClampFlexion(spine.FlexionAt(elapsed))
}

// Frame composes the frame at elapsed seconds without rendering it.
func (c *Composer) Frame(index int, elapsed float64) Frame {
	offY, floatRot := c.preset.Float.Transform(elapsed)
	root := mathutil.Mat4Mul(
		mathutil.Compose(mathutil.Vec3{0, offY, 0}, floatRot),
		mathutil.Compose(c.preset.Position, c.preset.Rotation),
	)
	return Frame{
		Scene:    c.preset.Config.Name,
		Index:    index,
		Elapsed:  elapsed,
		Spine:    c.assembler.Assemble(c.Flexion(elapsed)),
		Root:     root,
		Camera:   c.preset.Camera,
		Lighting: c.preset.Lighting,
	}
}

// TickAt composes frame index at elapsed and renders it when a renderer is
// attached. Render failures are returned, never swallowed; the composed
// frame is returned either way.
func (c *Composer) TickAt(index int, elapsed float64) (Frame, error) {
	f := c.Frame(index, elapsed)
	if c.renderer == nil {
		return f, nil
	}
	if err := c.renderer.Render(f); err != nil {
		return f, fmt.Errorf("scene: %s frame %d (t=%.3fs): %w", f.Scene, index, elapsed, err)
	}
	return f, nil
}

// Tick is the per-frame entry point: elapsed seconds in, spine state out.
func (c *Composer) Tick(elapsed float64) (spine.SpineState, error) {
	f, err := c.TickAt(c.next, elapsed)
	c.next++
	return f.Spine, err
}

// TickClock ticks with the clock's current elapsed time.
func (c *Composer) TickClock(clk Clock) (spine.SpineState, error) {
	return c.Tick(clk.Elapsed())
}

// Drive ticks once per value received on ticks until the channel closes or
// ctx is cancelled. It stops at the first render error.
func (c *Composer) Drive(ctx context.Context, ticks <-chan float64) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t, ok := <-ticks:
			if !ok {
				return nil
			}
			if _, err := c.Tick(t); err != nil {
				return err
			}
		}
	}
}
