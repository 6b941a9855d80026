package tinycolor

import "github.com/chewxy/math32"

// Okhsv is a color in the Okhsv color space. H is the hue angle normalized
// to a full turn, in [0,1); S and V follow HSV semantics relative to the
// sRGB gamut hull for that hue.
type Okhsv struct {
	H float32 `json:"h"`
	S float32 `json:"s"`
	V float32 `json:"v"`
}

// okhsvS0 is the fixed lower saturation anchor of the Okhsv remap.
const okhsvS0 = 0.5

// Okhsv converts the color to Okhsv. Achromatic colors come out with hue 0
// and saturation 0.
func (c Oklab) Okhsv() Okhsv {
	l := c.L
	chroma := math32.Sqrt(c.A*c.A + c.B*c.B)
	if chroma < achromaticChroma {
		return Okhsv{H: 0, S: 0, V: toe(l)}
	}

	a_ := c.A / chroma
	b_ := c.B / chroma
	h := hueAngle(c.A, c.B)

	sMax, tMax := stMax(findCusp(a_, b_))
	k := 1 - okhsvS0/sMax

	// project onto the top of the hull: (lV, cV) is where the ray from
	// white through this color crosses the maximum-saturation curve
	t_ := tMax / (chroma + l*tMax)
	lV := t_ * l
	cV := t_ * chroma

	// undo the gamut-safety rescale applied by the inverse transform
	lVt := toeInv(lV)
	cVt := cV * lVt / lV

	scaled := oklabToLinear(Oklab{L: lVt, A: a_ * cVt, B: b_ * cVt})
	scaleL := math32.Cbrt(1 / math32.Max(math32.Max(scaled.R, scaled.G), math32.Max(scaled.B, 0)))

	l /= scaleL
	chroma /= scaleL

	chroma = chroma * toe(l) / l
	l = toe(l)

	v := l / lV
	s := (okhsvS0 + tMax) * cV / (tMax*okhsvS0 + tMax*k*cV)

	return Okhsv{H: h, S: s, V: v}
}

// Oklab converts the color to Oklab. After the nominal hull mapping, the
// result is rescaled by the reciprocal cube root of the dominant linear RGB
// channel at cusp-level lightness, which guarantees the point lies on or
// inside the gamut. The order matters: the unscaled lVt/cVt pair is derived
// from toeInv(lV) first, and the toe is applied to the rescaled lightness.
func (c Okhsv) Oklab() Oklab {
	if c.V == 0 {
		return Oklab{}
	}

	a_, b_ := hueVector(c.H)

	sMax, tMax := stMax(findCusp(a_, b_))
	k := 1 - okhsvS0/sMax

	denom := okhsvS0 + tMax - tMax*k*c.S
	lV := 1 - c.S*okhsvS0/denom
	cV := c.S * tMax * okhsvS0 / denom

	l := c.V * lV
	chroma := c.V * cV

	lVt := toeInv(lV)
	cVt := cV * lVt / lV

	lNew := toeInv(l)
	chroma = chroma * lNew / l
	l = lNew

	scaled := oklabToLinear(Oklab{L: lVt, A: a_ * cVt, B: b_ * cVt})
	scaleL := math32.Cbrt(1 / math32.Max(math32.Max(scaled.R, scaled.G), math32.Max(scaled.B, 0)))

	l *= scaleL
	chroma *= scaleL

	return Oklab{L: l, A: chroma * a_, B: chroma * b_}
}

// SRGB converts the color to gamma-encoded sRGB via Oklab.
func (c Okhsv) SRGB() SRGB { return c.Oklab().SRGB() }

// RGB converts the color to linear RGB via Oklab.
func (c Okhsv) RGB() RGB { return c.Oklab().RGB() }

// Okhsl converts the color to Okhsl via Oklab.
func (c Okhsv) Okhsl() Okhsl { return c.Oklab().Okhsl() }

// Okhsv returns the color unchanged.
func (c Okhsv) Okhsv() Okhsv { return c }

// HSL converts the color to classic HSL via gamma-encoded sRGB.
func (c Okhsv) HSL() HSL { return c.SRGB().HSL() }

// HSV converts the color to classic HSV via gamma-encoded sRGB.
func (c Okhsv) HSV() HSV { return c.SRGB().HSV() }

// RGBA implements the standard [image/color.Color] interface.
func (c Okhsv) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }
