package common

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SatSub subtracts b from a without going below zero.
func SatSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
