package tinycolor

import "github.com/chewxy/math32"

// This file implements the sRGB gamut queries behind the Okhsl and Okhsv
// conversions, following Björn Ottosson's Okhsl/Okhsv derivation. Hues are
// passed around as a unit vector (a, b) in the Oklab a/b plane. The numeric
// coefficients are fitted approximations of the gamut boundary and must be
// kept verbatim.

// cusp is the point of maximum chroma reachable for a fixed hue: the tip of
// the gamut's cross-section in the lightness/chroma plane.
type cusp struct {
	L float32
	C float32
}

// sextantEps absorbs float32 hue quantization in the channel selection
// below. The blue primary sits within 5e-8 of both the red and green
// selection edges, and a hue vector rebuilt from a stored float32 hue angle
// moves the condition values by about 1e-7, enough to flip either
// comparison. Biasing both edges toward the green branch keeps the
// selection identical whether the hue vector is exact or reconstructed.
const sextantEps = 1e-5

// computeMaxSaturation finds the maximum saturation (S = C/L) possible for a
// given hue that fits in sRGB. Saturation is approximated with a per-channel
// polynomial, then sharpened with one step of Halley's method on the
// boundary constraint of whichever RGB channel goes below zero first.
// a and b must be normalized so a^2 + b^2 == 1.
func computeMaxSaturation(a, b float32) float32 {
	// select coefficients depending on which component goes below zero first
	var k0, k1, k2, k3, k4, wl, wm, ws float32
	if -1.88170328*a-0.80936493*b > 1+sextantEps { // red component
		k0 = +1.19086277
		k1 = +1.76576728
		k2 = +0.59662641
		k3 = +0.75515197
		k4 = +0.56771245

		wl = +4.0767416621
		wm = -3.3077115913
		ws = +0.2309699292
	} else if 1.81444104*a-1.19445276*b > 1-sextantEps { // green component
		k0 = +0.73956515
		k1 = -0.45954404
		k2 = +0.08285427
		k3 = +0.12541070
		k4 = +0.14503204

		wl = -1.2684380046
		wm = +2.6097574011
		ws = -0.3413193965
	} else { // blue component
		k0 = +1.35733652
		k1 = -0.00915799
		k2 = -1.15130210
		k3 = -0.50559606
		k4 = +0.00692167

		wl = -0.0041960863
		wm = -0.7034186147
		ws = +1.7076147010
	}

	// polynomial initial estimate
	sat := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	kL := +0.3963377774*a + 0.2158037573*b
	kM := -0.1055613458*a - 0.0638541728*b
	kS := -0.0894841775*a - 1.2914855480*b

	// one Halley step; accurate to float32 for this domain
	l_ := 1 + sat*kL
	m_ := 1 + sat*kM
	s_ := 1 + sat*kS

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	lDS := 3 * kL * l_ * l_
	mDS := 3 * kM * m_ * m_
	sDS := 3 * kS * s_ * s_

	lDS2 := 6 * kL * kL * l_
	mDS2 := 6 * kM * kM * m_
	sDS2 := 6 * kS * kS * s_

	f := wl*l + wm*m + ws*s
	f1 := wl*lDS + wm*mDS + ws*sDS
	f2 := wl*lDS2 + wm*mDS2 + ws*sDS2

	return sat - f*f1/(f1*f1-0.5*f*f2)
}

// findCusp finds the lightness and chroma of the gamut cusp for a given hue.
// a and b must be normalized so a^2 + b^2 == 1.
func findCusp(a, b float32) cusp {
	sCusp := computeMaxSaturation(a, b)

	// Convert the lightness-1, max-saturation point to linear sRGB and
	// rescale lightness so the dominant channel lands exactly on 1. RGB
	// scales as the cube of an Oklab scale, hence the cube root.
	rgbAtMax := oklabToLinear(Oklab{L: 1, A: sCusp * a, B: sCusp * b})
	lCusp := math32.Cbrt(1 / math32.Max(math32.Max(rgbAtMax.R, rgbAtMax.G), rgbAtMax.B))

	return cusp{L: lCusp, C: lCusp * sCusp}
}

// findGamutIntersection finds the intersection of the gamut boundary with the
// line defined by
//
//	L = L0 * (1 - t) + t * L1
//	C = t * C1
//
// a and b must be normalized so a^2 + b^2 == 1.
func findGamutIntersection(a, b, l1, c1, l0 float32) float32 {
	return findGamutIntersectionCusp(a, b, l1, c1, l0, findCusp(a, b))
}

// findGamutIntersectionCusp is findGamutIntersection with a precomputed cusp,
// so callers issuing several queries at the same hue only pay for the cusp
// once.
func findGamutIntersectionCusp(a, b, l1, c1, l0 float32, cu cusp) float32 {
	// intersect the lower and upper halves of the gamut triangle separately
	var t float32
	if (l1-l0)*cu.C-(cu.L-l0)*c1 <= 0 { // lower half
		t = cu.C * l0 / (c1*cu.L + cu.C*(l0-l1))
	} else { // upper half
		// first intersect with the triangle edge
		t = cu.C * (l0 - 1) / (c1*(cu.L-1) + cu.C*(l0-l1))

		// then one step of Halley's method per channel
		dL := l1 - l0
		dC := c1

		kL := +0.3963377774*a + 0.2158037573*b
		kM := -0.1055613458*a - 0.0638541728*b
		kS := -0.0894841775*a - 1.2914855480*b

		lDt := dL + dC*kL
		mDt := dL + dC*kM
		sDt := dL + dC*kS

		L := l0*(1-t) + t*l1
		C := t * c1

		l_ := L + C*kL
		m_ := L + C*kM
		s_ := L + C*kS

		l := l_ * l_ * l_
		m := m_ * m_ * m_
		s := s_ * s_ * s_

		ldt := 3 * lDt * l_ * l_
		mdt := 3 * mDt * m_ * m_
		sdt := 3 * sDt * s_ * s_

		ldt2 := 6 * lDt * lDt * l_
		mdt2 := 6 * mDt * mDt * m_
		sdt2 := 6 * sDt * sDt * s_

		// a channel whose Halley step has a negative derivative factor is
		// not converging toward its boundary; park it on a large sentinel
		// so the minimum below ignores it.
		const sentinel = 10e5

		r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s - 1
		r1 := 4.0767416621*ldt - 3.3077115913*mdt + 0.2309699292*sdt
		r2 := 4.0767416621*ldt2 - 3.3077115913*mdt2 + 0.2309699292*sdt2

		uR := r1 / (r1*r1 - 0.5*r*r2)
		tR := float32(sentinel)
		if uR >= 0 {
			tR = -r * uR
		}

		g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s - 1
		g1 := -1.2684380046*ldt + 2.6097574011*mdt - 0.3413193965*sdt
		g2 := -1.2684380046*ldt2 + 2.6097574011*mdt2 - 0.3413193965*sdt2

		uG := g1 / (g1*g1 - 0.5*g*g2)
		tG := float32(sentinel)
		if uG >= 0 {
			tG = -g * uG
		}

		bb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s - 1
		b1 := -0.0041960863*ldt - 0.7034186147*mdt + 1.7076147010*sdt
		b2 := -0.0041960863*ldt2 - 0.7034186147*mdt2 + 1.7076147010*sdt2

		uB := b1 / (b1*b1 - 0.5*bb*b2)
		tB := float32(sentinel)
		if uB >= 0 {
			tB = -bb * uB
		}

		t += math32.Min(tR, math32.Min(tG, tB))
	}

	return t
}

// stMax returns the saturation anchors S = C/L and T = C/(1-L) at the cusp.
func stMax(cu cusp) (s, t float32) {
	return cu.C / cu.L, cu.C / (1 - cu.L)
}

// stMid returns a polynomial approximation of the mid-gamut saturation
// anchors for a given hue. Unlike computeMaxSaturation this fit is valid for
// all hues without branching.
func stMid(a, b float32) (s, t float32) {
	s = 0.11516993 + 1.0/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))

	t = 0.11239642 + 1.0/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))

	return s, t
}

// chromaLimits returns three characteristic chroma values at lightness l for
// a given hue: c0, a soft lower anchor built from fixed reference chromas at
// extreme lightness; cMid, a smooth mid-gamut anchor; and cMax, the true
// gamut boundary. They are the control points of the piecewise-rational
// saturation remap in the Okhsl codec.
func chromaLimits(l, a, b float32) (c0, cMid, cMax float32) {
	cu := findCusp(a, b)

	cMax = findGamutIntersectionCusp(a, b, l, 1, l, cu)
	sMax, tMax := stMax(cu)

	// scale the mid anchor so it never exceeds the triangle edge
	k := cMax / math32.Min(l*sMax, (1-l)*tMax)

	sMid, tMid := stMid(a, b)

	ca := l * sMid
	cb := (1 - l) * tMid
	cMid = 0.9 * k * math32.Sqrt(math32.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))

	ca = l * 0.4
	cb = (1 - l) * 0.8
	c0 = math32.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))

	return c0, cMid, cMax
}
