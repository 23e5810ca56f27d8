package eval

import (
	"fmt"
	"math"
)

// RankTriple places a document in the ranking under evaluation (Position) and
// in the two ideal rankings, by relevance and by credibility. All three are
// 1-based.
type RankTriple struct {
	DocID                string
	Position             int
	IdealRelevanceRank   int
	IdealCredibilityRank int
}

// RankList is a ranking of documents ordered by ascending Position, where
// positions run 1..n without gaps.
type RankList []RankTriple

// ScoreTriple holds the relevance and credibility gains of the document found
// at Position in the ranking under evaluation.
type ScoreTriple struct {
	DocID       string
	Position    int
	Relevance   float64
	Credibility float64
}

// ScoreList is a ranking of scored documents ordered by ascending Position,
// where positions run 1..n without gaps.
type ScoreList []ScoreTriple

// Validate checks that the list is non-empty, contiguous and that every ideal
// rank is a valid 1-based position.
func (l RankList) Validate() error {
	if len(l) == 0 {
		return invalidArgument("RankList", "expected at least one document")
	}
	for i, t := range l {
		if t.Position != i+1 {
			return invalidArgument("RankList", fmt.Sprintf("expected position %d at index %d", i+1, i), float64(t.Position))
		}
		if t.IdealRelevanceRank < 1 || t.IdealCredibilityRank < 1 {
			return invalidArgument("RankList",
				fmt.Sprintf("expected positive ideal ranks for the document at position %d", t.Position),
				float64(t.IdealRelevanceRank), float64(t.IdealCredibilityRank))
		}
	}
	return nil
}

// Validate checks that the list is non-empty, contiguous and that all scores
// are finite and non-negative.
func (l ScoreList) Validate() error {
	if len(l) == 0 {
		return invalidArgument("ScoreList", "expected at least one document")
	}
	for i, t := range l {
		if t.Position != i+1 {
			return invalidArgument("ScoreList", fmt.Sprintf("expected position %d at index %d", i+1, i), float64(t.Position))
		}
		if !validGain(t.Relevance) || !validGain(t.Credibility) {
			return invalidArgument("ScoreList",
				fmt.Sprintf("expected finite non-negative scores for the document at position %d", t.Position),
				t.Relevance, t.Credibility)
		}
	}
	return nil
}

func validGain(z float64) bool {
	return z >= 0 && !math.IsInf(z, 0) && !math.IsNaN(z)
}

// discount is the rank discount 1/log2(1+i) for the 1-based position i.
func discount(i int) float64 {
	return 1.0 / math.Log2(1+float64(i))
}
