package tinycolor

import "github.com/chewxy/math32"

// Toe remap constants from Björn Ottosson's Okhsl/Okhsv derivation. They are
// a fitted approximation and must not be retuned.
const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1.0 + toeK1) / (1.0 + toeK2)
)

// toe maps Oklab lightness to the perceptual lightness estimate used by
// Okhsl and Okhsv. It is a monotonic bijection on [0,1] with toe(0) == 0 and
// toe(1) == 1.
func toe(x float32) float32 {
	return 0.5 * (toeK3*x - toeK1 + math32.Sqrt((toeK3*x-toeK1)*(toeK3*x-toeK1)+4*toeK2*toeK3*x))
}

// toeInv is the exact algebraic inverse of toe.
func toeInv(x float32) float32 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}
