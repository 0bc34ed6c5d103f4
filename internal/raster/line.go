package raster

import (
	"image/color"
	"math"
)

// DrawPolyline draws connected segments through the projected points with
// straight-alpha blending. Segments are depth-tested against the z-buffer
// but never write to it, so they do not hide geometry drawn later.
func DrawPolyline(fb *FrameBuffer, px, py, pz []float64, c color.NRGBA, opacity, width float64) {
	for i := 0; i+1 < len(px); i++ {
		drawSegment(fb, px[i], py[i], pz[i], px[i+1], py[i+1], pz[i+1], c, opacity, width)
	}
}

func drawSegment(fb *FrameBuffer, x0, y0, z0, x1, y1, z1 float64, c color.NRGBA, opacity, width float64) {
	if math.IsInf(z0, -1) || math.IsInf(z1, -1) {
		return
	}
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps < 1 {
		steps = 1
	}
	n := int(math.Round(width))
	if n < 1 {
		n = 1
	}
	off := n / 2
	a := opacity * float64(c.A) / 255

	// Each pixel is blended at most once per segment so overlapping stamps
	// do not darken the line.
	seen := make(map[int]struct{}, (steps+1)*n)
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		cx := int(x0 + (x1-x0)*t)
		cy := int(y0 + (y1-y0)*t)
		z := z0 + (z1-z0)*t
		for dy := 0; dy < n; dy++ {
			for dx := 0; dx < n; dx++ {
				x, y := cx+dx-off, cy+dy-off
				if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
					continue
				}
				zIdx := y*fb.Width + x
				if _, ok := seen[zIdx]; ok {
					continue
				}
				seen[zIdx] = struct{}{}
				if z < fb.ZBuf[zIdx] {
					continue
				}
				fb.blendOver(zIdx*4, c.R, c.G, c.B, a)
			}
		}
	}
}
