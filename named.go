package tinycolor

// Named constant colors, in the gamma-encoded sRGB representation.
var (
	White  = SRGB{R: 1, G: 1, B: 1}
	Black  = SRGB{R: 0, G: 0, B: 0}
	Red    = SRGB{R: 1, G: 0, B: 0}
	Yellow = SRGB{R: 1, G: 1, B: 0}
	Green  = SRGB{R: 0, G: 1, B: 0}
	Aqua   = SRGB{R: 0, G: 1, B: 1}
	Blue   = SRGB{R: 0, G: 0, B: 1}
	Purple = SRGB{R: 1, G: 0, B: 1}
)
