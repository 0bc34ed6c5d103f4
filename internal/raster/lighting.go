package raster

import (
	"image/color"
	"math"

	"spine-flexion-renderer/internal/mathutil"
)

// DirectionalLight shines from Dir (unit vector pointing toward the light).
type DirectionalLight struct {
	Dir       mathutil.Vec3
	Color     mathutil.Vec3 // linear RGB
	Intensity float64
}

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	Ambient  mathutil.Vec3 // linear RGB, intensity folded in
	Lights   []DirectionalLight
	Sky      mathutil.Vec3 // hemisphere fill from above, linear RGB
	Ground   mathutil.Vec3 // hemisphere fill from below, linear RGB
	Hemi     float64
	HalfMain mathutil.Vec3 // half-vector of the first light for Blinn-Phong
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns a neutral white ambient rig with no direct lights.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Ambient:  mathutil.Vec3{1, 1, 1},
		SpecInt:  0.25,
		SpecPow:  12.0,
		Exposure: 1.0,
		InvGamma: 1.0 / 2.2,
	}
}

// SetView updates the specular half-vector for a camera looking along viewDir.
func (lc *LightConfig) SetView(viewDir mathutil.Vec3) {
	if len(lc.Lights) == 0 {
		lc.HalfMain = mathutil.Vec3{}
		return
	}
	lc.HalfMain = lc.Lights[0].Dir.Sub(viewDir.Normalize()).Normalize()
}

// Shade returns the per-channel light multiplier for a world-space face normal.
func (lc *LightConfig) Shade(normal mathutil.Vec3) mathutil.Vec3 {
	out := lc.Ambient

	// Hemisphere fill, blended by how much the face points up.
	up := normal[1]*0.5 + 0.5
	for k := 0; k < 3; k++ {
		out[k] += (lc.Sky[k]*up + lc.Ground[k]*(1-up)) * lc.Hemi
	}

	// Lambertian (abs for double-sided)
	for _, l := range lc.Lights {
		ndl := math.Abs(normal.Dot(l.Dir)) * l.Intensity
		out = out.Add(l.Color.Scale(ndl))
	}

	// Blinn-Phong specular
	ndh := math.Abs(normal.Dot(lc.HalfMain))
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt
	return out.Add(mathutil.Vec3{spec, spec, spec})
}

// Linear converts an sRGB color to linear RGB.
func Linear(c color.NRGBA) mathutil.Vec3 {
	return mathutil.Vec3{srgbToLinear[c.R], srgbToLinear[c.G], srgbToLinear[c.B]}
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
