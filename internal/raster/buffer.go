package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved (straight alpha), len = W*H*4
	ZBuf   []float64 // inverse depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

// blendOver composites a straight-alpha color over the pixel at byte offset i.
func (fb *FrameBuffer) blendOver(i int, r, g, b uint8, a float64) {
	if a <= 0 {
		return
	}
	if a >= 1 {
		fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3] = r, g, b, 255
		return
	}
	dstA := float64(fb.Color[i+3]) / 255
	outA := a + dstA*(1-a)
	if outA <= 0 {
		return
	}
	mix := func(src, dst uint8) uint8 {
		return clamp255((float64(src)*a + float64(dst)*dstA*(1-a)) / outA)
	}
	fb.Color[i] = mix(r, fb.Color[i])
	fb.Color[i+1] = mix(g, fb.Color[i+1])
	fb.Color[i+2] = mix(b, fb.Color[i+2])
	fb.Color[i+3] = clamp255(outA * 255)
}
