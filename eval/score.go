package eval

import (
	"sort"
)

func checkLambda(measure string, lambda float64) error {
	if !(lambda >= 0 && lambda <= 1) {
		return invalidArgument(measure, "expected a lambda in the range [0,1]", lambda)
	}
	return nil
}

// gain mixes the relevance and credibility scores of a document.
func (t ScoreTriple) gain(lambda float64) float64 {
	return lambda*t.Relevance + (1.0-lambda)*t.Credibility
}

// WeightedCumulativeScore (WCS) is the discounted cumulative gain of the list
// where each document's gain is lambda*relevance + (1-lambda)*credibility.
func WeightedCumulativeScore(l ScoreList, lambda float64) (float64, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	if err := checkLambda("WCS", lambda); err != nil {
		return 0, err
	}
	return weightedCumulativeScore(l, lambda), nil
}

func weightedCumulativeScore(l ScoreList, lambda float64) float64 {
	var score float64
	for i, t := range l {
		score += discount(i+1) * t.gain(lambda)
	}
	return score
}

// IdealOrdering returns a copy of the list sorted by descending mixed gain.
// Documents with equal gain keep their input order. Positions are renumbered
// to reflect the new ranking.
func IdealOrdering(l ScoreList, lambda float64) (ScoreList, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := checkLambda("IdealOrdering", lambda); err != nil {
		return nil, err
	}
	return idealOrdering(l, lambda), nil
}

func idealOrdering(l ScoreList, lambda float64) ScoreList {
	ideal := make(ScoreList, len(l))
	copy(ideal, l)
	sort.SliceStable(ideal, func(i, j int) bool {
		return ideal[i].gain(lambda) > ideal[j].gain(lambda)
	})
	for i := range ideal {
		ideal[i].Position = i + 1
	}
	return ideal
}

// IdealWeightedCumulativeScore (IWCS) is the WCS of the ideal ordering of the list.
func IdealWeightedCumulativeScore(l ScoreList, lambda float64) (float64, error) {
	ideal, err := IdealOrdering(l, lambda)
	if err != nil {
		return 0, err
	}
	return weightedCumulativeScore(ideal, lambda), nil
}

// NormalisedWeightedCumulativeScore (NWCS) is WCS/IWCS. A list whose documents
// all have zero gain is already in ideal order and scores one.
func NormalisedWeightedCumulativeScore(l ScoreList, lambda float64) (float64, error) {
	wcs, err := WeightedCumulativeScore(l, lambda)
	if err != nil {
		return 0, err
	}
	iwcs := weightedCumulativeScore(idealOrdering(l, lambda), lambda)
	if iwcs == 0 {
		return 1.0, nil
	}
	return wcs / iwcs, nil
}
