package tinycolor

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestLinearToOklab(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want Oklab
		tol  float32
	}{
		{"white", RGB{1, 1, 1}, Oklab{1, 0, 0}, 1e-5},
		{"black", RGB{0, 0, 0}, Oklab{0, 0, 0}, 0},
		{"red", RGB{1, 0, 0}, Oklab{0.6279554, 0.2248631, 0.1258463}, 1e-5},
		{"mixed", RGB{0.2, 0.6, 0.5}, Oklab{0.7873863, -0.0823785, 0.0001307}, 1e-5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linearToOklab(tt.in)
			if math32.Abs(got.L-tt.want.L) > tt.tol ||
				math32.Abs(got.A-tt.want.A) > tt.tol ||
				math32.Abs(got.B-tt.want.B) > tt.tol {
				t.Errorf("linearToOklab(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOklabToLinear(t *testing.T) {
	in := Oklab{L: 0.5, A: 0.1, B: -0.05}
	want := RGB{0.2471233, 0.065863, 0.2081919}

	got := oklabToLinear(in)
	if math32.Abs(got.R-want.R) > 1e-5 ||
		math32.Abs(got.G-want.G) > 1e-5 ||
		math32.Abs(got.B-want.B) > 1e-5 {
		t.Errorf("oklabToLinear(%+v) = %+v, want %+v", in, got, want)
	}
}

func TestOklabGraysHaveNoChroma(t *testing.T) {
	for i := 0; i <= 10; i++ {
		x := float32(i) / 10
		lab := linearToOklab(RGB{x, x, x})
		if math32.Abs(lab.A) > 1e-5 || math32.Abs(lab.B) > 1e-5 {
			t.Errorf("gray %g: a=%g b=%g, want 0", x, lab.A, lab.B)
		}
	}
}

func TestOklabRoundTrip(t *testing.T) {
	colors := []RGB{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
		{0.25, 0.5, 0.75},
		{0.9, 0.1, 0.4},
	}

	for _, c := range colors {
		got := oklabToLinear(linearToOklab(c))
		if math32.Abs(got.R-c.R) > 1e-5 ||
			math32.Abs(got.G-c.G) > 1e-5 ||
			math32.Abs(got.B-c.B) > 1e-5 {
			t.Errorf("round trip of %+v gave %+v", c, got)
		}
	}
}

func TestOklabConversionMethods(t *testing.T) {
	// the struct methods route through the same matrices as the helpers
	c := SRGB{R: 0.7, G: 0.3, B: 0.5}
	direct := linearToOklab(c.RGB())
	viaMethod := c.Oklab()
	if direct != viaMethod {
		t.Errorf("SRGB.Oklab() = %+v, helper gave %+v", viaMethod, direct)
	}

	back := viaMethod.SRGB()
	if math32.Abs(back.R-c.R) > 1e-5 ||
		math32.Abs(back.G-c.G) > 1e-5 ||
		math32.Abs(back.B-c.B) > 1e-5 {
		t.Errorf("Oklab.SRGB() round trip gave %+v, want %+v", back, c)
	}
}
