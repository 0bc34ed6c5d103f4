package scene

import (
	"fmt"
	"image/color"
	"math"

	"spine-flexion-renderer/internal/mathutil"
	"spine-flexion-renderer/internal/spine"
	"spine-flexion-renderer/internal/viewmatrix"
)

// Preset bundles a scene configuration with its staging.
type Preset struct {
	Config   *spine.SceneConfig
	Float    FloatMotion
	Position mathutil.Vec3 // scene group placement inside the float group
	Rotation mathutil.Vec3
	Camera   viewmatrix.Camera
	Lighting Lighting
}

var white = color.NRGBA{255, 255, 255, 255}

// HeroPreset stages the animated C1–T1 column seen side-on.
func HeroPreset() Preset {
	return Preset{
		Config:   spine.HeroConfig(),
		Float:    FloatMotion{Speed: 2, RotationIntensity: 0.2, FloatIntensity: 0.2},
		Position: mathutil.Vec3{0, -0.5, 0},
		Rotation: mathutil.Vec3{0, -math.Pi / 2, 0},
		Camera:   viewmatrix.Camera{Position: mathutil.Vec3{0, 0, 6}, FOV: 40},
		Lighting: Lighting{
			Ambient: 0.7,
			Lights: []Light{
				{Position: mathutil.Vec3{10, 10, 10}, Color: color.NRGBA{0xe0, 0xf2, 0xfe, 0xff}, Intensity: 1},
				{Position: mathutil.Vec3{-10, 5, 5}, Color: white, Intensity: 0.5},
			},
			Environment: "city",
		},
	}
}

// AnatomyPreset stages the static atlas/axis close-up.
func AnatomyPreset() Preset {
	return Preset{
		Config:   spine.AnatomyConfig(),
		Float:    FloatMotion{Speed: 1, RotationIntensity: 0.5, FloatIntensity: 0.5},
		Rotation: mathutil.Vec3{0, -math.Pi / 2, 0},
		Camera:   viewmatrix.Camera{Position: mathutil.Vec3{4, 0, 0}, FOV: 45},
		Lighting: Lighting{
			Ambient: 1,
			Lights: []Light{
				{Position: mathutil.Vec3{5, 5, 5}, Color: white, Intensity: 1.5},
			},
			Environment: "warehouse",
		},
	}
}

// PresetByName returns the preset for a built-in scene name.
func PresetByName(name string) (Preset, error) {
	switch name {
	case spine.HeroScene:
		return HeroPreset(), nil
	case spine.AnatomyScene:
		return AnatomyPreset(), nil
	}
	return Preset{}, fmt.Errorf("scene: unknown scene %q", name)
}
