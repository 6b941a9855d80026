package tinycolor

import "github.com/chewxy/math32"

// Oklab is a color in the Oklab color space. L is perceptual lightness,
// nominally in [0,1]; A and B are signed perceptual chroma axes. The color is
// achromatic when A and B are both zero.
type Oklab struct {
	L float32 `json:"l"`
	A float32 `json:"a"`
	B float32 `json:"b"`
}

// linearToOklab converts linear RGB to Oklab through the LMS cone space:
// a fixed 3x3 matrix, a component-wise cube root, and a second fixed matrix.
func linearToOklab(c RGB) Oklab {
	l := 0.4122214708*c.R + 0.5363325363*c.G + 0.0514459929*c.B
	m := 0.2119034982*c.R + 0.6806995451*c.G + 0.1073969566*c.B
	s := 0.0883024619*c.R + 0.2817188376*c.G + 0.6299787005*c.B

	l_ := math32.Cbrt(l)
	m_ := math32.Cbrt(m)
	s_ := math32.Cbrt(s)

	return Oklab{
		L: 0.2104542553*l_ + 0.7936177850*m_ - 0.0040720468*s_,
		A: 1.9779984951*l_ - 2.4285922050*m_ + 0.4505937099*s_,
		B: 0.0259040371*l_ + 0.7827717662*m_ - 0.8086757660*s_,
	}
}

// oklabToLinear converts Oklab to linear RGB: the inverse matrices with a
// component-wise cube in between.
func oklabToLinear(c Oklab) RGB {
	l_ := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	m_ := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	s_ := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	return RGB{
		R: +4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}

// SRGB converts the color to gamma-encoded sRGB via linear RGB.
func (c Oklab) SRGB() SRGB { return oklabToLinear(c).SRGB() }

// RGB converts the color to linear RGB.
func (c Oklab) RGB() RGB { return oklabToLinear(c) }

// Oklab returns the color unchanged.
func (c Oklab) Oklab() Oklab { return c }

// HSL converts the color to classic HSL via gamma-encoded sRGB.
func (c Oklab) HSL() HSL { return c.SRGB().HSL() }

// HSV converts the color to classic HSV via gamma-encoded sRGB.
func (c Oklab) HSV() HSV { return c.SRGB().HSV() }

// RGBA implements the standard [image/color.Color] interface.
func (c Oklab) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }
