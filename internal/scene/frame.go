package scene

import (
	"image/color"

	"spine-flexion-renderer/internal/mathutil"
	"spine-flexion-renderer/internal/spine"
	"spine-flexion-renderer/internal/viewmatrix"
)

// Renderer is the render adapter: it consumes a composed frame and issues
// the actual drawing. Implementations live outside the core.
type Renderer interface {
	Render(f Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f Frame) error

func (fn RendererFunc) Render(f Frame) error { return fn(f) }

// Clock supplies monotonically increasing elapsed seconds, once per frame.
type Clock interface {
	Elapsed() float64
}

// Light is a light placed in world space. Point and spot lights are both
// treated as directional from their position toward the origin.
type Light struct {
	Position  mathutil.Vec3
	Color     color.NRGBA
	Intensity float64
}

// Lighting is a scene's light rig plus an environment preset name.
type Lighting struct {
	Ambient     float64
	Lights      []Light
	Environment string
}

// Frame is everything a renderer needs for one frame. Root is the
// world transform of the scene group the vertebra poses are expressed in.
type Frame struct {
	Scene    string
	Index    int
	Elapsed  float64
	Spine    spine.SpineState
	Root     mathutil.Mat4
	Camera   viewmatrix.Camera
	Lighting Lighting
}
