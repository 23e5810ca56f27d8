// Package eval implements evaluation measures for ranked lists judged on both
// relevance and credibility, following Lioma, Simonsen & Larsen (2017).
package eval

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// Topic is a single ranked list to evaluate. Ranks feed the rank error
// measures and Scores feed the score based measures; an evaluator only reads
// the form it needs.
type Topic struct {
	ID     string
	Ranks  RankList
	Scores ScoreList
}

// Evaluator is an interface for evaluating a ranked list of documents.
type Evaluator interface {
	Score(topic Topic) (float64, error)
	Name() string
}

// LRE is the local rank error.
type LRE struct{ Mu, Nu float64 }

// GRE is the global rank error.
type GRE struct{ Mu, Nu float64 }

// NLRE is the normalised local rank error. When Constants is set, C_LRE is
// looked up in it rather than recomputed.
type NLRE struct {
	Mu, Nu    float64
	Constants *ConstantCache
}

// NGRE is the normalised global rank error. When Constants is set, C_GRE is
// looked up in it rather than recomputed.
type NGRE struct {
	Mu, Nu    float64
	Constants *ConstantCache
}

// WCS is the weighted cumulative score.
type WCS struct{ Lambda float64 }

// IWCS is the weighted cumulative score of the ideal ordering.
type IWCS struct{ Lambda float64 }

// NWCS is the normalised weighted cumulative score.
type NWCS struct{ Lambda float64 }

// CAM aggregates a relevance oriented and a credibility oriented measure
// with a convex combination.
type CAM struct {
	Relevance, Credibility Evaluator
	Lambda                 float64
}

// WHAM aggregates a relevance oriented and a credibility oriented measure
// with a weighted harmonic mean.
type WHAM struct {
	Relevance, Credibility Evaluator
	Lambda                 float64
}

func rankName(measure string, mu, nu float64) string {
	return fmt.Sprintf("%s[mu=%v,nu=%v]", measure, mu, nu)
}

func scoreName(measure string, lambda float64) string {
	return fmt.Sprintf("%s[lambda=%v]", measure, lambda)
}

func (e LRE) Score(topic Topic) (float64, error) {
	return LocalRankError(topic.Ranks, e.Mu, e.Nu)
}

func (e LRE) Name() string {
	return rankName("LRE", e.Mu, e.Nu)
}

func (e GRE) Score(topic Topic) (float64, error) {
	return GlobalRankError(topic.Ranks, e.Mu, e.Nu)
}

func (e GRE) Name() string {
	return rankName("GRE", e.Mu, e.Nu)
}

func (e NLRE) Score(topic Topic) (float64, error) {
	if e.Constants == nil {
		return NormalisedLocalRankError(topic.Ranks, e.Mu, e.Nu)
	}
	return normalisedLocalRankError(topic.Ranks, e.Mu, e.Nu, e.Constants.LocalRankError)
}

func (e NLRE) Name() string {
	return rankName("NLRE", e.Mu, e.Nu)
}

func (e NGRE) Score(topic Topic) (float64, error) {
	if e.Constants == nil {
		return NormalisedGlobalRankError(topic.Ranks, e.Mu, e.Nu)
	}
	return normalisedGlobalRankError(topic.Ranks, e.Mu, e.Nu, e.Constants.GlobalRankError)
}

func (e NGRE) Name() string {
	return rankName("NGRE", e.Mu, e.Nu)
}

func (e WCS) Score(topic Topic) (float64, error) {
	return WeightedCumulativeScore(topic.Scores, e.Lambda)
}

func (e WCS) Name() string {
	return scoreName("WCS", e.Lambda)
}

func (e IWCS) Score(topic Topic) (float64, error) {
	return IdealWeightedCumulativeScore(topic.Scores, e.Lambda)
}

func (e IWCS) Name() string {
	return scoreName("IWCS", e.Lambda)
}

func (e NWCS) Score(topic Topic) (float64, error) {
	return NormalisedWeightedCumulativeScore(topic.Scores, e.Lambda)
}

func (e NWCS) Name() string {
	return scoreName("NWCS", e.Lambda)
}

// components scores a topic with both halves of an aggregating measure.
func components(topic Topic, relevance, credibility Evaluator) (mr, mc float64, err error) {
	mr, err = relevance.Score(topic)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "relevance component %s", relevance.Name())
	}
	mc, err = credibility.Score(topic)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "credibility component %s", credibility.Name())
	}
	return
}

func (e CAM) Score(topic Topic) (float64, error) {
	mr, mc, err := components(topic, e.Relevance, e.Credibility)
	if err != nil {
		return 0, err
	}
	return ConvexAggregate(mr, mc, e.Lambda)
}

func (e CAM) Name() string {
	return fmt.Sprintf("%s(%s,%s)", scoreName("CAM", e.Lambda), e.Relevance.Name(), e.Credibility.Name())
}

func (e WHAM) Score(topic Topic) (float64, error) {
	mr, mc, err := components(topic, e.Relevance, e.Credibility)
	if err != nil {
		return 0, err
	}
	return HarmonicAggregate(mr, mc, e.Lambda)
}

func (e WHAM) Name() string {
	return fmt.Sprintf("%s(%s,%s)", scoreName("WHAM", e.Lambda), e.Relevance.Name(), e.Credibility.Name())
}

// Evaluate scores topics using supplied evaluation measurements, running at
// most concurrency topics at once. The result maps topic->measure->score.
func Evaluate(evaluators []Evaluator, topics []Topic, concurrency int) (map[string]map[string]float64, error) {
	return EvaluateWithProgress(evaluators, topics, concurrency, nil)
}

// EvaluateWithProgress is Evaluate, additionally calling progress (if not
// nil) once each topic has been scored. progress may be called concurrently.
func EvaluateWithProgress(evaluators []Evaluator, topics []Topic, concurrency int, progress func(topic string)) (map[string]map[string]float64, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	scores := make(map[string]map[string]float64, len(topics))
	sem := make(chan bool, concurrency)
	for _, topic := range topics {
		sem <- true
		wg.Add(1)
		go func(topic Topic) {
			defer func() {
				<-sem
				wg.Done()
			}()
			s, err := scoreTopic(evaluators, topic)
			if progress != nil {
				progress(topic.ID)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			scores[topic.ID] = s
		}(topic)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return scores, nil
}

func scoreTopic(evaluators []Evaluator, topic Topic) (map[string]float64, error) {
	s := make(map[string]float64, len(evaluators))
	for _, evaluator := range evaluators {
		score, err := evaluator.Score(topic)
		if err != nil {
			return nil, errors.Wrapf(err, "topic %s: %s", topic.ID, evaluator.Name())
		}
		s[evaluator.Name()] = score
	}
	return s, nil
}
