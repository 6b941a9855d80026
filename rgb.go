package tinycolor

import "github.com/chewxy/math32"

// RGB is a color in the linear RGB color space. Components are linear light:
// 0 is black and 1 is full intensity per channel. Values outside [0,1]
// represent out-of-gamut colors and are carried through unchanged.
type RGB struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

// srgbToLinear converts a single gamma-encoded sRGB component to linear RGB.
func srgbToLinear(x float32) float32 {
	if x >= 0.04045 {
		return math32.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

// linearToSRGB converts a single linear RGB component to gamma-encoded sRGB.
func linearToSRGB(x float32) float32 {
	if x >= 0.0031308 {
		return 1.055*math32.Pow(x, 1.0/2.4) - 0.055
	}
	return 12.92 * x
}

// SRGB gamma-encodes the color.
func (c RGB) SRGB() SRGB {
	return SRGB{
		R: linearToSRGB(c.R),
		G: linearToSRGB(c.G),
		B: linearToSRGB(c.B),
	}
}

// RGB returns the color unchanged.
func (c RGB) RGB() RGB { return c }

// Oklab converts the color to Oklab via the LMS cone response.
func (c RGB) Oklab() Oklab {
	return linearToOklab(c)
}

// Okhsl converts the color to Okhsl via Oklab.
func (c RGB) Okhsl() Okhsl { return c.Oklab().Okhsl() }

// Okhsv converts the color to Okhsv via Oklab.
func (c RGB) Okhsv() Okhsv { return c.Oklab().Okhsv() }

// HSL converts the color to classic HSL via gamma-encoded sRGB.
func (c RGB) HSL() HSL { return c.SRGB().HSL() }

// HSV converts the color to classic HSV via gamma-encoded sRGB.
func (c RGB) HSV() HSV { return c.SRGB().HSV() }

// RGBA implements the standard [image/color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }
