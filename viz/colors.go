// Package viz renders design statistics as plots: frequency heatmaps,
// sequence logos, similarity profiles and transition networks.
package viz

import "image/color"

// WebLogo-style residue colors: polar green, neutral purple, basic
// blue, acidic red, hydrophobic black.
var webLogoColors = map[byte]color.Color{
	'G': color.RGBA{G: 0x80, A: 0xff},
	'S': color.RGBA{G: 0x80, A: 0xff},
	'T': color.RGBA{G: 0x80, A: 0xff},
	'Y': color.RGBA{G: 0x80, A: 0xff},
	'C': color.RGBA{G: 0x80, A: 0xff},
	'Q': color.RGBA{R: 0x80, B: 0x80, A: 0xff},
	'N': color.RGBA{R: 0x80, B: 0x80, A: 0xff},
	'K': color.RGBA{B: 0xff, A: 0xff},
	'R': color.RGBA{B: 0xff, A: 0xff},
	'H': color.RGBA{B: 0xff, A: 0xff},
	'D': color.RGBA{R: 0xff, A: 0xff},
	'E': color.RGBA{R: 0xff, A: 0xff},
}

// ResidueColor returns the WebLogo color of a residue type.
func ResidueColor(aa byte) color.Color {
	if c, ok := webLogoColors[aa]; ok {
		return c
	}
	return color.Black
}

var (
	identityColor   = color.RGBA{G: 0x80, A: 0xff}
	similarityColor = color.RGBA{R: 0xff, G: 0xa5, A: 0xff}
)
