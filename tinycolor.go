// Package tinycolor converts colors between seven color spaces: gamma-encoded
// sRGB, linear RGB, Oklab, Okhsl, Okhsv, and classic HSL and HSV.
//
// Each space is a small three-component float32 value type. Every type can be
// converted to every other type, either by a direct formula or by composing
// through linear RGB and Oklab:
//
//	c := tinycolor.SRGB{R: 1, G: 0.5, B: 0.25}
//	hsl := c.Okhsl()
//
// Functions that accept any color space take the [Color] interface, so the
// caller can store colors in whatever representation they want:
//
//	func anyColorAsRGB(c tinycolor.Color) tinycolor.RGB {
//		return c.RGB()
//	}
//
// All conversions are pure functions of their input; there is no shared state
// and any number of conversions may run concurrently.
package tinycolor

// Color is implemented by every color space type in this package. It converts
// the receiver to each of the seven canonical representations; converting a
// value to its own space returns the value unchanged.
type Color interface {
	SRGB() SRGB
	RGB() RGB
	Oklab() Oklab
	Okhsl() Okhsl
	Okhsv() Okhsv
	HSL() HSL
	HSV() HSV
}
