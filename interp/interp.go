package interp

// Linear interpolates between n0 and n1.
// a = 0 returns n0, a = 1 returns n1; values outside [0,1] extrapolate.
func Linear(n0, n1, a float64) float64 {
	return (1.0-a)*n0 + a*n1
}

// Cubic interpolates between n1 and n2 using n0 (the sample before n1)
// and n3 (the sample after n2) to shape the tangents.
// a = 0 returns n1, a = 1 returns n2.
func Cubic(n0, n1, n2, n3, a float64) float64 {
	p := (n3 - n2) - (n0 - n1)
	q := (n0 - n1) - p
	r := n2 - n0
	s := n1

	return p*a*a*a + q*a*a + r*a + s
}

// SCurve3 maps a ∈ [0,1] onto a cubic S-curve.
func SCurve3(a float64) float64 {
	return a * a * (3.0 - 2.0*a)
}

// SCurve5 maps a ∈ [0,1] onto a quintic S-curve.
func SCurve5(a float64) float64 {
	a3 := a * a * a
	a4 := a3 * a
	a5 := a4 * a

	return 6.0*a5 - 15.0*a4 + 10.0*a3
}

// ClampInt clamps v onto [lo, hi]. The caller guarantees lo <= hi.
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
