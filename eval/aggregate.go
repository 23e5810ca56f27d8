package eval

// ConvexAggregate (CAM) combines a relevance measure mr and a credibility
// measure mc as lambda*mr + (1-lambda)*mc.
func ConvexAggregate(mr, mc, lambda float64) (float64, error) {
	if err := checkLambda("CAM", lambda); err != nil {
		return 0, err
	}
	return lambda*mr + (1.0-lambda)*mc, nil
}

// HarmonicAggregate (WHAM) is the weighted harmonic mean of a relevance
// measure mr and a credibility measure mc. If either is zero there is no
// combined quality and the result is zero.
func HarmonicAggregate(mr, mc, lambda float64) (float64, error) {
	if mr == 0 || mc == 0 {
		return 0.0, nil
	}
	if err := checkLambda("WHAM", lambda); err != nil {
		return 0, err
	}
	return 1.0 / (lambda*(1.0/mr) + (1.0-lambda)*(1.0/mc)), nil
}
