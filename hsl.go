package tinycolor

import "github.com/chewxy/math32"

// HSL is a color in the classic HSL color space, computed from gamma-encoded
// sRGB. H is the hue angle normalized to a full turn, in [0,1); S and L are
// in [0,1]. Unlike Okhsl it is relative to the sRGB cube, not perceptual.
type HSL struct {
	H float32 `json:"h"`
	S float32 `json:"s"`
	L float32 `json:"l"`
}

// hueToRGB resolves one channel of the HSL-to-RGB conversion.
func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 0.5 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// HSL converts the color to classic HSL.
func (c SRGB) HSL() HSL {
	max := math32.Max(c.R, math32.Max(c.G, c.B))
	min := math32.Min(c.R, math32.Min(c.G, c.B))

	l := (max + min) / 2

	var h, s float32
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case c.R:
			h = (c.G - c.B) / d
			if c.G < c.B {
				h += 6
			}
		case c.G:
			h = (c.B-c.R)/d + 2
		case c.B:
			h = (c.R-c.G)/d + 4
		}
		h /= 6
	}

	return HSL{H: h, S: s, L: l}
}

// SRGB converts the color to gamma-encoded sRGB.
func (c HSL) SRGB() SRGB {
	if c.S == 0 {
		return SRGB{R: c.L, G: c.L, B: c.L}
	}

	var q float32
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q

	return SRGB{
		R: hueToRGB(p, q, c.H+1.0/3.0),
		G: hueToRGB(p, q, c.H),
		B: hueToRGB(p, q, c.H-1.0/3.0),
	}
}

// RGB converts the color to linear RGB via gamma-encoded sRGB.
func (c HSL) RGB() RGB { return c.SRGB().RGB() }

// Oklab converts the color to Oklab via gamma-encoded sRGB.
func (c HSL) Oklab() Oklab { return c.SRGB().Oklab() }

// Okhsl converts the color to Okhsl via gamma-encoded sRGB.
func (c HSL) Okhsl() Okhsl { return c.SRGB().Okhsl() }

// Okhsv converts the color to Okhsv via gamma-encoded sRGB.
func (c HSL) Okhsv() Okhsv { return c.SRGB().Okhsv() }

// HSL returns the color unchanged.
func (c HSL) HSL() HSL { return c }

// HSV converts the color to classic HSV via gamma-encoded sRGB.
func (c HSL) HSV() HSV { return c.SRGB().HSV() }

// RGBA implements the standard [image/color.Color] interface.
func (c HSL) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }
