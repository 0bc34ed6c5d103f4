package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawLabel draws text centred on (cx, cy) with the given opacity.
func DrawLabel(dst *image.NRGBA, text string, cx, cy int, c color.NRGBA, opacity float64) {
	if text == "" || opacity <= 0 {
		return
	}
	face := basicfont.Face7x13
	c.A = clamp255(float64(c.A) * opacity)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(text)
	m := face.Metrics()
	// Dot is the baseline origin; shift so the text box is centred.
	height := m.Ascent + m.Descent
	d.Dot = fixed.Point26_6{
		X: fixed.I(cx) - width/2,
		Y: fixed.I(cy) - height/2 + m.Ascent,
	}
	d.DrawString(text)
}
