package eval

// Monus is truncated subtraction over the non-negative reals: a-b when a > b,
// otherwise zero.
func Monus(a, b float64) (float64, error) {
	if !(a >= 0) || !(b >= 0) {
		return 0, invalidArgument("Monus", "expected two non-negative values", a, b)
	}
	if a <= b {
		return 0.0, nil
	}
	return a - b, nil
}
