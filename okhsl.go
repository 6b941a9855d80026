package tinycolor

import "github.com/chewxy/math32"

// Okhsl is a color in the Okhsl color space. H is the hue angle normalized
// to a full turn, in [0,1). S and L are gamut-relative: s = 1 always reaches
// the sRGB gamut boundary for the given lightness.
type Okhsl struct {
	H float32 `json:"h"`
	S float32 `json:"s"`
	L float32 `json:"l"`
}

// achromaticChroma is the chroma below which a color is treated as gray.
// float32 grays leave residual chroma around 1e-7 after the Oklab matrices,
// so hue and saturation are meaningless below this.
const achromaticChroma = 1e-5

// hueVector returns the unit vector in the Oklab a/b plane for a hue angle
// in [0,1).
func hueVector(h float32) (a, b float32) {
	return math32.Cos(2 * math32.Pi * h), math32.Sin(2 * math32.Pi * h)
}

// hueAngle recovers the normalized hue angle from Oklab chroma axes. The
// sign and offset keep h = 0 on the same reference hue as classic HSL red.
func hueAngle(a, b float32) float32 {
	return 0.5 + 0.5*math32.Atan2(-b, -a)/math32.Pi
}

// Okhsl converts the color to Okhsl. Chroma is mapped to gamut-relative
// saturation through a two-segment rational curve anchored at the chroma
// limits for this hue and lightness; lightness goes through the perceptual
// toe. Achromatic colors come out with hue 0 and saturation 0.
func (c Oklab) Okhsl() Okhsl {
	chroma := math32.Sqrt(c.A*c.A + c.B*c.B)
	if chroma < achromaticChroma {
		return Okhsl{H: 0, S: 0, L: toe(c.L)}
	}

	a_ := c.A / chroma
	b_ := c.B / chroma
	h := hueAngle(c.A, c.B)

	c0, cMid, cMax := chromaLimits(c.L, a_, b_)

	var s float32
	if chroma < cMid {
		k1 := 0.8 * c0
		k2 := 1 - k1/cMid

		t := chroma / (k1 + k2*chroma)
		s = t * 0.8
	} else {
		k0 := cMid
		k1 := 0.2 * cMid * cMid * 1.25 * 1.25 / c0
		k2 := 1 - k1/(cMax-cMid)

		t := (chroma - k0) / (k1 + k2*(chroma-k0))
		s = 0.8 + 0.2*t
	}

	return Okhsl{H: h, S: s, L: toe(c.L)}
}

// Oklab converts the color to Oklab, inverting the saturation remap at the
// toe-inverted lightness.
func (c Okhsl) Oklab() Oklab {
	if c.L == 0 {
		return Oklab{}
	}

	a_, b_ := hueVector(c.H)
	l := toeInv(c.L)

	c0, cMid, cMax := chromaLimits(l, a_, b_)

	var t, k0, k1, k2 float32
	if c.S < 0.8 {
		t = 1.25 * c.S
		k0 = 0
		k1 = 0.8 * c0
		k2 = 1 - k1/cMid
	} else {
		t = 5 * (c.S - 0.8)
		k0 = cMid
		k1 = 0.2 * cMid * cMid * 1.25 * 1.25 / c0
		k2 = 1 - k1/(cMax-cMid)
	}

	chroma := k0 + t*k1/(1-k2*t)

	return Oklab{L: l, A: chroma * a_, B: chroma * b_}
}

// SRGB converts the color to gamma-encoded sRGB via Oklab.
func (c Okhsl) SRGB() SRGB { return c.Oklab().SRGB() }

// RGB converts the color to linear RGB via Oklab.
func (c Okhsl) RGB() RGB { return c.Oklab().RGB() }

// Okhsl returns the color unchanged.
func (c Okhsl) Okhsl() Okhsl { return c }

// Okhsv converts the color to Okhsv via Oklab.
func (c Okhsl) Okhsv() Okhsv { return c.Oklab().Okhsv() }

// HSL converts the color to classic HSL via gamma-encoded sRGB.
func (c Okhsl) HSL() HSL { return c.SRGB().HSL() }

// HSV converts the color to classic HSV via gamma-encoded sRGB.
func (c Okhsl) HSV() HSV { return c.SRGB().HSV() }

// RGBA implements the standard [image/color.Color] interface.
func (c Okhsl) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }
