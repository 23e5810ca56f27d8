package eval

import (
	"math"
)

// constantFunc computes a normalisation constant for a list of length n.
type constantFunc func(n int, mu, nu float64) float64

func checkRankParameters(measure string, mu, nu float64) error {
	if !(mu >= 0) {
		return invalidArgument(measure, "expected a non-negative mu", mu)
	}
	if !(nu >= 0) {
		return invalidArgument(measure, "expected a non-negative nu", nu)
	}
	if mu+nu <= 0 {
		return invalidArgument(measure, "expected mu + nu > 0", mu, nu)
	}
	return nil
}

// rankErrors is the amount by which two adjacent documents are out of order
// with respect to the ideal relevance and credibility rankings.
func rankErrors(a, b RankTriple) (epsR, epsC float64, err error) {
	epsR, err = Monus(float64(a.IdealRelevanceRank), float64(b.IdealRelevanceRank))
	if err != nil {
		return
	}
	epsC, err = Monus(float64(a.IdealCredibilityRank), float64(b.IdealCredibilityRank))
	return
}

// prepareRankList validates the list and parameters. A list of one document
// has no adjacent pair and so is trivially error free, whatever mu and nu are.
func prepareRankList(measure string, l RankList, mu, nu float64) (trivial bool, err error) {
	if err := l.Validate(); err != nil {
		return false, err
	}
	if len(l) == 1 {
		return true, nil
	}
	return false, checkRankParameters(measure, mu, nu)
}

// LocalRankError (LRE) sums, over every adjacent pair of documents, the
// discounted interaction between their relevance and credibility misordering.
// A list of one document has no error.
func LocalRankError(l RankList, mu, nu float64) (float64, error) {
	trivial, err := prepareRankList("LRE", l, mu, nu)
	if err != nil || trivial {
		return 0.0, err
	}

	var sum float64
	for i := 0; i < len(l)-1; i++ {
		epsR, epsC, err := rankErrors(l[i], l[i+1])
		if err != nil {
			return 0, err
		}
		sum += discount(i+1) * ((mu+epsR)*(nu+epsC) - mu*nu)
	}
	return sum, nil
}

// GlobalRankError (GRE) accumulates relevance and credibility misordering
// separately and combines the two totals multiplicatively.
func GlobalRankError(l RankList, mu, nu float64) (float64, error) {
	trivial, err := prepareRankList("GRE", l, mu, nu)
	if err != nil || trivial {
		return 0.0, err
	}

	var sumRel, sumCred float64
	for i := 0; i < len(l)-1; i++ {
		epsR, epsC, err := rankErrors(l[i], l[i+1])
		if err != nil {
			return 0, err
		}
		w := discount(i + 1)
		sumRel += w * epsR
		sumCred += w * epsC
	}
	return (1+mu*sumRel)*(1+nu*sumCred) - 1, nil
}

// constantLimit is the exclusive upper bound of the summation index used by
// both normalisation constants.
func constantLimit(n int) int {
	return int(math.Floor(float64(n)/2 - 1))
}

// LocalRankErrorConstant (C_LRE) is the worst-case local rank error of a list
// of length n. It is zero for lists shorter than four documents.
func LocalRankErrorConstant(n int, mu, nu float64) float64 {
	var sum float64
	for j := 0; j < constantLimit(n); j++ {
		x := float64(n - 2*j - 1)
		sum += (x*x + (mu+nu)*x) / (1 + math.Log2(1+float64(j)))
	}
	return sum
}

// GlobalRankErrorConstant (C_GRE) is the worst-case global rank error of a
// list of length n.
func GlobalRankErrorConstant(n int, mu, nu float64) float64 {
	var s float64
	for j := 0; j < constantLimit(n); j++ {
		s += float64(n-2*j-1) / (1 + math.Log2(1+float64(j)))
	}
	return mu*nu*s*s + (mu+nu)*s
}

// normalise maps an error onto 1 - e/c. An error of zero is a perfect list
// regardless of the constant; a non-zero error with a zero constant cannot be
// normalised.
func normalise(measure string, e, c float64, n int) (float64, error) {
	if e == 0 {
		return 1.0, nil
	}
	if c == 0 {
		return 0, invalidArgument(measure, "cannot normalise a non-zero error with a zero constant (n, error)", float64(n), e)
	}
	return 1.0 - e/c, nil
}

func normalisedLocalRankError(l RankList, mu, nu float64, constant constantFunc) (float64, error) {
	e, err := LocalRankError(l, mu, nu)
	if err != nil {
		return 0, err
	}
	return normalise("NLRE", e, constant(len(l), mu, nu), len(l))
}

func normalisedGlobalRankError(l RankList, mu, nu float64, constant constantFunc) (float64, error) {
	e, err := GlobalRankError(l, mu, nu)
	if err != nil {
		return 0, err
	}
	return normalise("NGRE", e, constant(len(l), mu, nu), len(l))
}

// NormalisedLocalRankError (NLRE) is 1 - LRE/C_LRE. It is 1 for a list in
// ideal order and is not clamped; see Clamp.
func NormalisedLocalRankError(l RankList, mu, nu float64) (float64, error) {
	return normalisedLocalRankError(l, mu, nu, LocalRankErrorConstant)
}

// NormalisedGlobalRankError (NGRE) is 1 - GRE/C_GRE. It is 1 for a list in
// ideal order and is not clamped; see Clamp.
func NormalisedGlobalRankError(l RankList, mu, nu float64) (float64, error) {
	return normalisedGlobalRankError(l, mu, nu, GlobalRankErrorConstant)
}

// Clamp bounds v to [0, 1].
func Clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
