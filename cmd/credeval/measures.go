package main

import (
	"fmt"
	"sort"

	"github.com/diku-irlab/A66/eval"
)

// parameters are the measure parameters shared by every evaluator. When
// Clamp is set, the normalised rank errors are bounded to [0, 1].
type parameters struct {
	Mu, Nu, Lambda float64
	Constants      *eval.ConstantCache
	Clamp          bool
}

// bounded clamps a normalised rank error when requested.
func (p parameters) bounded(e eval.Evaluator) eval.Evaluator {
	if p.Clamp {
		return clamped{e}
	}
	return e
}

// evaluationMeasures maps the names accepted on the command line to
// evaluators. The aggregating measures combine a relevance-only and a
// credibility-only instance of the measure they are named after.
//
// The LRE term expands to mu*epsC + nu*epsR + epsR*epsC, so a relevance-only
// NLRE puts its weight in Nu and a credibility-only NLRE puts it in Mu. GRE
// keeps the two apart, so NGRE uses Mu for relevance and Nu for credibility.
func evaluationMeasures(p parameters) map[string]eval.Evaluator {
	nlreRel := p.bounded(eval.NLRE{Nu: p.Mu, Constants: p.Constants})
	nlreCred := p.bounded(eval.NLRE{Mu: p.Nu, Constants: p.Constants})
	ngreRel := p.bounded(eval.NGRE{Mu: p.Mu, Constants: p.Constants})
	ngreCred := p.bounded(eval.NGRE{Nu: p.Nu, Constants: p.Constants})

	return map[string]eval.Evaluator{
		"lre":  eval.LRE{Mu: p.Mu, Nu: p.Nu},
		"nlre": p.bounded(eval.NLRE{Mu: p.Mu, Nu: p.Nu, Constants: p.Constants}),
		"gre":  eval.GRE{Mu: p.Mu, Nu: p.Nu},
		"ngre": p.bounded(eval.NGRE{Mu: p.Mu, Nu: p.Nu, Constants: p.Constants}),
		"wcs":  eval.WCS{Lambda: p.Lambda},
		"iwcs": eval.IWCS{Lambda: p.Lambda},
		"nwcs": eval.NWCS{Lambda: p.Lambda},

		"cam_nwcs":  eval.CAM{Relevance: eval.NWCS{Lambda: 1}, Credibility: eval.NWCS{Lambda: 0}, Lambda: p.Lambda},
		"wham_nwcs": eval.WHAM{Relevance: eval.NWCS{Lambda: 1}, Credibility: eval.NWCS{Lambda: 0}, Lambda: p.Lambda},
		"cam_nlre":  eval.CAM{Relevance: nlreRel, Credibility: nlreCred, Lambda: p.Lambda},
		"wham_nlre": eval.WHAM{Relevance: nlreRel, Credibility: nlreCred, Lambda: p.Lambda},
		"cam_ngre":  eval.CAM{Relevance: ngreRel, Credibility: ngreCred, Lambda: p.Lambda},
		"wham_ngre": eval.WHAM{Relevance: ngreRel, Credibility: ngreCred, Lambda: p.Lambda},
	}
}

// selectMeasures looks up the requested measures, failing on unknown names.
func selectMeasures(names []string, p parameters) ([]eval.Evaluator, error) {
	available := evaluationMeasures(p)
	evaluators := make([]eval.Evaluator, 0, len(names))
	for _, name := range names {
		e, ok := available[name]
		if !ok {
			known := make([]string, 0, len(available))
			for k := range available {
				known = append(known, k)
			}
			sort.Strings(known)
			return nil, fmt.Errorf("unknown measure %q, expected one of %v", name, known)
		}
		evaluators = append(evaluators, e)
	}
	return evaluators, nil
}

// clamped bounds the score of the wrapped evaluator to [0, 1].
type clamped struct {
	eval.Evaluator
}

func (c clamped) Score(topic eval.Topic) (float64, error) {
	v, err := c.Evaluator.Score(topic)
	if err != nil {
		return 0, err
	}
	return eval.Clamp(v), nil
}
