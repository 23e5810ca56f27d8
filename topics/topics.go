// Package topics constructs the rankings consumed by the credibility measures
// from a TREC run and two sets of TREC qrels: one grading relevance and one
// grading credibility.
package topics

import (
	"io"
	"sort"

	"github.com/diku-irlab/A66/eval"
	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
)

// Load reads a run and the relevance and credibility qrels and builds a topic
// for every topic in the run.
func Load(run, relevance, credibility io.Reader) ([]eval.Topic, error) {
	results, err := trecresults.ResultsFromReader(run)
	if err != nil {
		return nil, errors.Wrap(err, "could not read run")
	}
	rel, err := trecresults.QrelsFromReader(relevance)
	if err != nil {
		return nil, errors.Wrap(err, "could not read relevance qrels")
	}
	cred, err := trecresults.QrelsFromReader(credibility)
	if err != nil {
		return nil, errors.Wrap(err, "could not read credibility qrels")
	}
	return FromTREC(results, rel, cred)
}

// FromTREC builds one topic per topic in the run, ordered by topic id.
func FromTREC(run trecresults.ResultFile, relevance, credibility trecresults.QrelsFile) ([]eval.Topic, error) {
	ids := make([]string, 0, len(run.Results))
	for id := range run.Results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	topics := make([]eval.Topic, 0, len(ids))
	for _, id := range ids {
		t, err := NewTopic(id, run.Results[id], relevance.Qrels[id], credibility.Qrels[id])
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, nil
}

// NewTopic judges a single ranked list. Documents are taken in run rank
// order; documents without a judgement are graded zero.
func NewTopic(id string, results trecresults.ResultList, relevance, credibility trecresults.Qrels) (eval.Topic, error) {
	if len(results) == 0 {
		return eval.Topic{}, errors.Errorf("topic %s has no retrieved documents", id)
	}

	docs, err := rankedDocuments(results)
	if err != nil {
		return eval.Topic{}, errors.Wrapf(err, "topic %s", id)
	}
	relGrades, err := grades(docs, relevance)
	if err != nil {
		return eval.Topic{}, errors.Wrapf(err, "topic %s relevance", id)
	}
	credGrades, err := grades(docs, credibility)
	if err != nil {
		return eval.Topic{}, errors.Wrapf(err, "topic %s credibility", id)
	}
	relRanks := IdealRanks(docs, relGrades)
	credRanks := IdealRanks(docs, credGrades)

	t := eval.Topic{
		ID:     id,
		Ranks:  make(eval.RankList, len(docs)),
		Scores: make(eval.ScoreList, len(docs)),
	}
	for i, doc := range docs {
		t.Ranks[i] = eval.RankTriple{
			DocID:                doc,
			Position:             i + 1,
			IdealRelevanceRank:   relRanks[doc],
			IdealCredibilityRank: credRanks[doc],
		}
		t.Scores[i] = eval.ScoreTriple{
			DocID:       doc,
			Position:    i + 1,
			Relevance:   float64(relGrades[doc]),
			Credibility: float64(credGrades[doc]),
		}
	}
	return t, nil
}

// rankedDocuments lists the document ids of a run in rank order. Equal ranks
// keep the order they were read in.
func rankedDocuments(results trecresults.ResultList) ([]string, error) {
	sorted := make(trecresults.ResultList, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})

	seen := make(map[string]bool, len(sorted))
	docs := make([]string, len(sorted))
	for i, r := range sorted {
		if seen[r.DocId] {
			return nil, errors.Errorf("document %s is retrieved more than once", r.DocId)
		}
		seen[r.DocId] = true
		docs[i] = r.DocId
	}
	return docs, nil
}

func grades(docs []string, qrels trecresults.Qrels) (map[string]int64, error) {
	g := make(map[string]int64, len(docs))
	for _, doc := range docs {
		q, ok := qrels[doc]
		if !ok {
			continue
		}
		if q.Score < 0 {
			return nil, errors.Errorf("document %s has negative grade %d", doc, q.Score)
		}
		g[doc] = q.Score
	}
	return g, nil
}

// IdealRanks assigns every document its 1-based position in the ideal
// ranking, i.e. docs sorted by descending grade. Documents with equal grades
// keep their relative order in docs.
func IdealRanks(docs []string, grades map[string]int64) map[string]int {
	ideal := make([]string, len(docs))
	copy(ideal, docs)
	sort.SliceStable(ideal, func(i, j int) bool {
		return grades[ideal[i]] > grades[ideal[j]]
	})

	ranks := make(map[string]int, len(ideal))
	for i, doc := range ideal {
		ranks[doc] = i + 1
	}
	return ranks
}
