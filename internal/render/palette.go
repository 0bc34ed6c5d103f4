package render

import "image/color"

// Palette holds material and label colors (sRGB).
type Palette struct {
	Body          color.NRGBA
	BodyHighlight color.NRGBA
	Arch          color.NRGBA
	ArchHighlight color.NRGBA

	Cord        color.NRGBA
	CordOpacity float64

	Label                 color.NRGBA
	LabelHighlight        color.NRGBA
	LabelOpacity          float64
	LabelHighlightOpacity float64
}

// DefaultPalette is slate bone with sky-blue emphasis.
func DefaultPalette() Palette {
	return Palette{
		Body:          color.NRGBA{0xe2, 0xe8, 0xf0, 0xff},
		BodyHighlight: color.NRGBA{0x0e, 0xa5, 0xe9, 0xff},
		Arch:          color.NRGBA{0xcb, 0xd5, 0xe1, 0xff},
		ArchHighlight: color.NRGBA{0x38, 0xbd, 0xf8, 0xff},

		Cord:        color.NRGBA{0x94, 0xa3, 0xb8, 0xff},
		CordOpacity: 0.5,

		Label:                 color.NRGBA{0x94, 0xa3, 0xb8, 0xff},
		LabelHighlight:        color.NRGBA{0x25, 0x63, 0xeb, 0xff},
		LabelOpacity:          0.4,
		LabelHighlightOpacity: 1.0,
	}
}

// Environment is a hemisphere fill approximating an image-based light preset.
type Environment struct {
	Sky       color.NRGBA
	Ground    color.NRGBA
	Intensity float64
}

// Environments are the presets the built-in scenes refer to by name.
var Environments = map[string]Environment{
	"city": {
		Sky:       color.NRGBA{0xc9, 0xd6, 0xe3, 0xff},
		Ground:    color.NRGBA{0x5a, 0x55, 0x4c, 0xff},
		Intensity: 0.35,
	},
	"warehouse": {
		Sky:       color.NRGBA{0xf1, 0xe3, 0xcc, 0xff},
		Ground:    color.NRGBA{0x6b, 0x5f, 0x52, 0xff},
		Intensity: 0.4,
	},
}
