package tinycolor

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSRGBToHSV(t *testing.T) {
	tests := []struct {
		name string
		in   SRGB
		want HSV
	}{
		{"red", SRGB{1, 0, 0}, HSV{0, 1, 1}},
		{"yellow", SRGB{1, 1, 0}, HSV{1.0 / 6, 1, 1}},
		{"green", SRGB{0, 1, 0}, HSV{1.0 / 3, 1, 1}},
		{"blue", SRGB{0, 0, 1}, HSV{2.0 / 3, 1, 1}},
		{"white", SRGB{1, 1, 1}, HSV{0, 0, 1}},
		{"black", SRGB{0, 0, 0}, HSV{0, 0, 0}},
		{"gray", SRGB{0.5, 0.5, 0.5}, HSV{0, 0, 0.5}},
		{"half red", SRGB{0.5, 0, 0}, HSV{0, 1, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.HSV()
			if math32.Abs(got.H-tt.want.H) > 1e-6 ||
				math32.Abs(got.S-tt.want.S) > 1e-6 ||
				math32.Abs(got.V-tt.want.V) > 1e-6 {
				t.Errorf("HSV() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHSVToSRGB(t *testing.T) {
	tests := []struct {
		name string
		in   HSV
		want SRGB
	}{
		{"red", HSV{0, 1, 1}, SRGB{1, 0, 0}},
		{"green", HSV{1.0 / 3, 1, 1}, SRGB{0, 1, 0}},
		{"blue", HSV{2.0 / 3, 1, 1}, SRGB{0, 0, 1}},
		{"gray", HSV{0.7, 0, 0.5}, SRGB{0.5, 0.5, 0.5}},
		{"wrapped hue", HSV{1, 1, 1}, SRGB{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.SRGB()
			if math32.Abs(got.R-tt.want.R) > 1e-6 ||
				math32.Abs(got.G-tt.want.G) > 1e-6 ||
				math32.Abs(got.B-tt.want.B) > 1e-6 {
				t.Errorf("SRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	colors := []SRGB{
		{1, 0, 0},
		{0.2, 0.4, 0.8},
		{0.9, 0.9, 0.1},
		{0.33, 0.33, 0.33},
		{0.05, 0.6, 0.3},
	}

	for _, c := range colors {
		got := c.HSV().SRGB()
		if math32.Abs(got.R-c.R) > 1e-5 ||
			math32.Abs(got.G-c.G) > 1e-5 ||
			math32.Abs(got.B-c.B) > 1e-5 {
			t.Errorf("round trip of %+v gave %+v", c, got)
		}
	}
}
