package tinycolor

import "github.com/chewxy/math32"

// HSV is a color in the classic HSV color space, computed from gamma-encoded
// sRGB. H is the hue angle normalized to a full turn, in [0,1); S and V are
// in [0,1].
type HSV struct {
	H float32 `json:"h"`
	S float32 `json:"s"`
	V float32 `json:"v"`
}

// HSV converts the color to classic HSV.
func (c SRGB) HSV() HSV {
	max := math32.Max(c.R, math32.Max(c.G, c.B))
	min := math32.Min(c.R, math32.Min(c.G, c.B))

	v := max
	d := max - min

	var s float32
	if max != 0 {
		s = d / max
	}

	var h float32
	switch {
	case max == min:
		h = 0
	case max == c.R:
		h = (c.G - c.B) / d
		if c.G < c.B {
			h += 6
		}
	case max == c.G:
		h = (c.B-c.R)/d + 2
	case max == c.B:
		h = (c.R-c.G)/d + 4
	}
	h /= 6

	return HSV{H: h, S: s, V: v}
}

// SRGB converts the color to gamma-encoded sRGB.
func (c HSV) SRGB() SRGB {
	i := math32.Floor(c.H * 6)
	f := c.H*6 - i
	p := c.V * (1 - c.S)
	q := c.V * (1 - f*c.S)
	t := c.V * (1 - (1-f)*c.S)

	switch int(i) % 6 {
	case 0:
		return SRGB{R: c.V, G: t, B: p}
	case 1:
		return SRGB{R: q, G: c.V, B: p}
	case 2:
		return SRGB{R: p, G: c.V, B: t}
	case 3:
		return SRGB{R: p, G: q, B: c.V}
	case 4:
		return SRGB{R: t, G: p, B: c.V}
	default:
		return SRGB{R: c.V, G: p, B: q}
	}
}

// RGB converts the color to linear RGB via gamma-encoded sRGB.
func (c HSV) RGB() RGB { return c.SRGB().RGB() }

// Oklab converts the color to Oklab via gamma-encoded sRGB.
func (c HSV) Oklab() Oklab { return c.SRGB().Oklab() }

// Okhsl converts the color to Okhsl via gamma-encoded sRGB.
func (c HSV) Okhsl() Okhsl { return c.SRGB().Okhsl() }

// Okhsv converts the color to Okhsv via gamma-encoded sRGB.
func (c HSV) Okhsv() Okhsv { return c.SRGB().Okhsv() }

// HSL converts the color to classic HSL via gamma-encoded sRGB.
func (c HSV) HSL() HSL { return c.SRGB().HSL() }

// HSV returns the color unchanged.
func (c HSV) HSV() HSV { return c }

// RGBA implements the standard [image/color.Color] interface.
func (c HSV) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }
