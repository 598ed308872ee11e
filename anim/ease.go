package anim

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep is the cubic Hermite ease between edges e0 and e1:
// t = clamp((x-e0)/(e1-e0), 0, 1), result t*t*(3-2t).
func Smoothstep(e0, e1, x float64) float64 {
	t := Clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}
