package raster

import (
	"image/color"
	"math"

	"spine-flexion-renderer/internal/mathutil"
)

// RasterizeTriangle fills a single triangle with z-buffering, sRGB color
// space, flat lighting and ACES tone mapping.
//
// This is the hot path: no allocation in the inner loop.
// shade is the per-face light multiplier from LightConfig.Shade.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	vi [3]int,
	base color.NRGBA,
	shade mathutil.Vec3,
	lc *LightConfig,
) {
	nv := len(px)

	// Bounds check
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	// Any vertex behind the near plane drops the whole face.
	if math.IsInf(z0, -1) || math.IsInf(z1, -1) || math.IsInf(z2, -1) {
		return
	}

	// Face color is constant: sRGB decode → shade → ACES → sRGB encode once.
	exposure := lc.Exposure
	invGamma := lc.InvGamma
	cr := clamp255(math.Pow(ACESTonemap(srgbToLinear[base.R]*shade[0]*exposure), invGamma) * 255)
	cg := clamp255(math.Pow(ACESTonemap(srgbToLinear[base.G]*shade[1]*exposure), invGamma) * 255)
	cb := clamp255(math.Pow(ACESTonemap(srgbToLinear[base.B]*shade[2]*exposure), invGamma) * 255)
	ca := base.A

	// Bounding box
	w, h := fb.Width, fb.Height
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Pixel loop, zero allocations. Samples are taken at pixel centres.
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * w
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = cr
			fb.Color[pxIdx+1] = cg
			fb.Color[pxIdx+2] = cb
			fb.Color[pxIdx+3] = ca
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
