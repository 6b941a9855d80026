package tinycolor

import (
	"fmt"
	"image/color"
	"strings"
)

// SRGB is a color in the gamma-encoded sRGB color space. Components are
// typically in [0,1], but extended values are allowed for out-of-gamut
// colors.
type SRGB struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

// ParseHex parses a hex color string like "#eb6f92" into an SRGB color.
func ParseHex(s string) (SRGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return SRGB{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return SRGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return SRGB{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
	}, nil
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
// Components are clamped to [0,1] before quantization.
func (c SRGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp01(c.R)*255.0+0.5),
		uint8(clamp01(c.G)*255.0+0.5),
		uint8(clamp01(c.B)*255.0+0.5))
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// SRGB returns the color unchanged.
func (c SRGB) SRGB() SRGB { return c }

// RGB gamma-decodes the color to linear RGB.
func (c SRGB) RGB() RGB {
	return RGB{
		R: srgbToLinear(c.R),
		G: srgbToLinear(c.G),
		B: srgbToLinear(c.B),
	}
}

// Oklab converts the color to Oklab via linear RGB.
func (c SRGB) Oklab() Oklab { return c.RGB().Oklab() }

// Okhsl converts the color to Okhsl via Oklab.
func (c SRGB) Okhsl() Okhsl { return c.RGB().Oklab().Okhsl() }

// Okhsv converts the color to Okhsv via Oklab.
func (c SRGB) Okhsv() Okhsv { return c.RGB().Oklab().Okhsv() }

// RGBA implements the standard [image/color.Color] interface. Components are
// clamped to [0,1]; alpha is always opaque.
func (c SRGB) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R)*65535.0 + 0.5)
	g = uint32(clamp01(c.G)*65535.0 + 0.5)
	b = uint32(clamp01(c.B)*65535.0 + 0.5)
	a = 0xffff
	return
}

// AsRGBA returns the color as a standard 8-bit [color.RGBA].
func (c SRGB) AsRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255.0 + 0.5),
		G: uint8(clamp01(c.G)*255.0 + 0.5),
		B: uint8(clamp01(c.B)*255.0 + 0.5),
		A: 255,
	}
}

// FromColor converts any standard [color.Color] to SRGB. Alpha is discarded;
// premultiplied components are un-premultiplied first.
func FromColor(c color.Color) SRGB {
	if s, ok := c.(SRGB); ok {
		return s
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return SRGB{}
	}
	fa := float32(a)
	return SRGB{
		R: float32(r) / fa,
		G: float32(g) / fa,
		B: float32(b) / fa,
	}
}

// Model is a standard [color.Model] that converts any color to [SRGB].
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})
