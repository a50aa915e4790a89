package mathutil

// ClampFloat clamps v to [min, max].
func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp interpolates linearly from a to b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// MoveToward moves v toward target by at most step.
func MoveToward(v, target, step float64) float64 {
	if v < target {
		v += step
		if v > target {
			return target
		}
		return v
	}
	v -= step
	if v < target {
		return target
	}
	return v
}
