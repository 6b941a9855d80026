package tinycolor

// Array forms of the color types, component order as in the struct
// definitions. Useful for shuttling colors through GPU buffers, JSON arrays,
// and other layout-sensitive code.

// Values returns the components as an array.
func (c SRGB) Values() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Values returns the components as an array.
func (c RGB) Values() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Values returns the components as an array.
func (c Oklab) Values() [3]float32 { return [3]float32{c.L, c.A, c.B} }

// Values returns the components as an array.
func (c Okhsl) Values() [3]float32 { return [3]float32{c.H, c.S, c.L} }

// Values returns the components as an array.
func (c Okhsv) Values() [3]float32 { return [3]float32{c.H, c.S, c.V} }

// Values returns the components as an array.
func (c HSL) Values() [3]float32 { return [3]float32{c.H, c.S, c.L} }

// Values returns the components as an array.
func (c HSV) Values() [3]float32 { return [3]float32{c.H, c.S, c.V} }

// SRGBFromValues builds an SRGB color from an array.
func SRGBFromValues(v [3]float32) SRGB { return SRGB{R: v[0], G: v[1], B: v[2]} }

// RGBFromValues builds a linear RGB color from an array.
func RGBFromValues(v [3]float32) RGB { return RGB{R: v[0], G: v[1], B: v[2]} }

// OklabFromValues builds an Oklab color from an array.
func OklabFromValues(v [3]float32) Oklab { return Oklab{L: v[0], A: v[1], B: v[2]} }

// OkhslFromValues builds an Okhsl color from an array.
func OkhslFromValues(v [3]float32) Okhsl { return Okhsl{H: v[0], S: v[1], L: v[2]} }

// OkhsvFromValues builds an Okhsv color from an array.
func OkhsvFromValues(v [3]float32) Okhsv { return Okhsv{H: v[0], S: v[1], V: v[2]} }

// HSLFromValues builds an HSL color from an array.
func HSLFromValues(v [3]float32) HSL { return HSL{H: v[0], S: v[1], L: v[2]} }

// HSVFromValues builds an HSV color from an array.
func HSVFromValues(v [3]float32) HSV { return HSV{H: v[0], S: v[1], V: v[2]} }
