package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// fallbackPalette colors procedural discs when the arena spec names none.
var fallbackPalette = []color.Color{
	colornames.Crimson,
	colornames.Steelblue,
	colornames.Seagreen,
	colornames.Goldenrod,
	colornames.Mediumpurple,
	colornames.Darkorange,
}

// PaletteColor returns the color for image index i, cycling through palette.
func PaletteColor(palette []color.Color, i int) color.Color {
	if len(palette) == 0 {
		palette = fallbackPalette
	}
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// Shade mixes c toward black by t in [0, 1].
func Shade(c color.Color, t float64) color.Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	k := 1 - t
	return color.NRGBA{
		R: uint8(float64(n.R) * k),
		G: uint8(float64(n.G) * k),
		B: uint8(float64(n.B) * k),
		A: n.A,
	}
}
