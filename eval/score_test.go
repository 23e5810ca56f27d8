package eval_test

import (
	"math"
	"testing"

	"github.com/diku-irlab/A66/eval"
	"github.com/pkg/errors"
)

func scoreList(scores ...[2]float64) eval.ScoreList {
	l := make(eval.ScoreList, len(scores))
	for i, s := range scores {
		l[i] = eval.ScoreTriple{
			DocID:       string(rune('a' + i)),
			Position:    i + 1,
			Relevance:   s[0],
			Credibility: s[1],
		}
	}
	return l
}

func TestWeightedCumulativeScore(t *testing.T) {
	l := scoreList([2]float64{0.2, 0.8}, [2]float64{1.0, 0.0}, [2]float64{0.6, 0.6})
	tests := []struct {
		lambda          float64
		wcs, iwcs, nwcs float64
		ideal           string
	}{
		{0, 1.1, 1.17855785214287, 0.933344084891514, "acb"},
		{0.5, 1.11546487678573, 1.16546487678573, 0.957098664236114, "cab"},
		{1, 1.13092975357146, 1.47855785214287, 0.764887049859023, "bca"},
		{0.3, 1.10927892607144, 1.14855785214287, 0.965801525801984, "acb"},
	}
	for _, tt := range tests {
		wcs, err := eval.WeightedCumulativeScore(l, tt.lambda)
		if err != nil {
			t.Fatal(err)
		}
		iwcs, err := eval.IdealWeightedCumulativeScore(l, tt.lambda)
		if err != nil {
			t.Fatal(err)
		}
		nwcs, err := eval.NormalisedWeightedCumulativeScore(l, tt.lambda)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(wcs-tt.wcs) > tolerance {
			t.Errorf("WCS(lambda=%v) = %v, want %v", tt.lambda, wcs, tt.wcs)
		}
		if math.Abs(iwcs-tt.iwcs) > tolerance {
			t.Errorf("IWCS(lambda=%v) = %v, want %v", tt.lambda, iwcs, tt.iwcs)
		}
		if math.Abs(nwcs-tt.nwcs) > tolerance {
			t.Errorf("NWCS(lambda=%v) = %v, want %v", tt.lambda, nwcs, tt.nwcs)
		}
		if nwcs < 0 || nwcs > 1 {
			t.Errorf("NWCS(lambda=%v) = %v is out of bounds", tt.lambda, nwcs)
		}

		ideal, err := eval.IdealOrdering(l, tt.lambda)
		if err != nil {
			t.Fatal(err)
		}
		var order string
		for i, d := range ideal {
			order += d.DocID
			if d.Position != i+1 {
				t.Errorf("IdealOrdering(lambda=%v) left position %d at index %d", tt.lambda, d.Position, i)
			}
		}
		if order != tt.ideal {
			t.Errorf("IdealOrdering(lambda=%v) = %s, want %s", tt.lambda, order, tt.ideal)
		}
	}

	// The input must not be reordered.
	if l[0].DocID != "a" || l[1].DocID != "b" || l[2].DocID != "c" || l[1].Position != 2 {
		t.Errorf("IdealOrdering modified its input: %+v", l)
	}
}

func TestWeightedCumulativeScoreSingleDimension(t *testing.T) {
	l := scoreList([2]float64{3, 100}, [2]float64{2, 7}, [2]float64{1, 0})
	var relevance, credibility float64
	for i, d := range l {
		relevance += d.Relevance / math.Log2(float64(i)+2)
		credibility += d.Credibility / math.Log2(float64(i)+2)
	}

	got, err := eval.WeightedCumulativeScore(l, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-relevance) > tolerance {
		t.Errorf("WCS(lambda=1) = %v, want relevance only %v", got, relevance)
	}
	got, err = eval.WeightedCumulativeScore(l, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-credibility) > tolerance {
		t.Errorf("WCS(lambda=0) = %v, want credibility only %v", got, credibility)
	}
}

func TestNormalisedWeightedCumulativeScoreTies(t *testing.T) {
	l := scoreList([2]float64{0.9, 0.1}, [2]float64{0.1, 0.9}, [2]float64{0.5, 0.5})

	wcs, err := eval.WeightedCumulativeScore(l, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(wcs-1.0654648767857289) > tolerance {
		t.Errorf("WCS = %v, want 1.0654648767857289", wcs)
	}

	ideal, err := eval.IdealOrdering(l, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	for i := range l {
		if ideal[i].DocID != l[i].DocID {
			t.Errorf("tied documents were reordered: %+v", ideal)
		}
	}

	nwcs, err := eval.NormalisedWeightedCumulativeScore(l, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(nwcs-1) > tolerance {
		t.Errorf("NWCS = %v, want 1", nwcs)
	}
}

func TestNormalisedWeightedCumulativeScoreIdealInput(t *testing.T) {
	l := scoreList([2]float64{4, 4}, [2]float64{3, 1}, [2]float64{1, 3}, [2]float64{0, 1})
	nwcs, err := eval.NormalisedWeightedCumulativeScore(l, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if nwcs != 1 {
		t.Errorf("NWCS = %v, want exactly 1", nwcs)
	}
}

func TestIdealWeightedCumulativeScorePermutation(t *testing.T) {
	a := scoreList([2]float64{0.1, 0.3}, [2]float64{0.9, 0.2}, [2]float64{0.4, 0.4}, [2]float64{0, 1})
	b := scoreList([2]float64{0, 1}, [2]float64{0.4, 0.4}, [2]float64{0.1, 0.3}, [2]float64{0.9, 0.2})
	for _, lambda := range []float64{0, 0.25, 0.5, 1} {
		ia, err := eval.IdealWeightedCumulativeScore(a, lambda)
		if err != nil {
			t.Fatal(err)
		}
		ib, err := eval.IdealWeightedCumulativeScore(b, lambda)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(ia-ib) > tolerance {
			t.Errorf("IWCS(lambda=%v) differs between permutations: %v != %v", lambda, ia, ib)
		}
		wa, _ := eval.WeightedCumulativeScore(a, lambda)
		if wa > ia+tolerance {
			t.Errorf("WCS(lambda=%v) = %v exceeds IWCS %v", lambda, wa, ia)
		}
	}
}

func TestNormalisedWeightedCumulativeScoreZeroGain(t *testing.T) {
	l := scoreList([2]float64{0, 0}, [2]float64{0, 0})
	nwcs, err := eval.NormalisedWeightedCumulativeScore(l, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if nwcs != 1 {
		t.Errorf("NWCS = %v, want 1", nwcs)
	}
}

func TestScoreMeasureLambda(t *testing.T) {
	l := scoreList([2]float64{1, 1})
	for _, lambda := range []float64{-0.1, 1.1, math.NaN()} {
		if _, err := eval.WeightedCumulativeScore(l, lambda); !errors.Is(err, eval.ErrInvalidArgument) {
			t.Errorf("WCS(lambda=%v) expected an invalid argument error, got %v", lambda, err)
		}
		if _, err := eval.IdealOrdering(l, lambda); !errors.Is(err, eval.ErrInvalidArgument) {
			t.Errorf("IdealOrdering(lambda=%v) expected an invalid argument error, got %v", lambda, err)
		}
		if _, err := eval.NormalisedWeightedCumulativeScore(l, lambda); !errors.Is(err, eval.ErrInvalidArgument) {
			t.Errorf("NWCS(lambda=%v) expected an invalid argument error, got %v", lambda, err)
		}
	}
}

func TestScoreListValidate(t *testing.T) {
	tests := []struct {
		name string
		list eval.ScoreList
	}{
		{"empty", eval.ScoreList{}},
		{"gap", eval.ScoreList{{Position: 1}, {Position: 3}}},
		{"unordered", eval.ScoreList{{Position: 2}, {Position: 1}}},
		{"negative relevance", eval.ScoreList{{Position: 1, Relevance: -1}}},
		{"negative credibility", eval.ScoreList{{Position: 1, Credibility: -0.5}}},
		{"infinite", eval.ScoreList{{Position: 1, Relevance: math.Inf(1)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := eval.WeightedCumulativeScore(tt.list, 0.5); !errors.Is(err, eval.ErrInvalidArgument) {
				t.Errorf("expected an invalid argument error, got %v", err)
			}
		})
	}
}
