// Package output provides different formats of output for evaluations.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// EvaluationFormatter formats a topic->measure->score map.
type EvaluationFormatter func(map[string]map[string]float64) (string, error)

// JsonEvaluationFormatter outputs results in a JSON format.
func JsonEvaluationFormatter(results map[string]map[string]float64) (string, error) {
	v, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvEvaluationFormatter outputs one row per topic, with the measures as
// columns in name order.
func CsvEvaluationFormatter(results map[string]map[string]float64) (string, error) {
	topics := make([]string, 0, len(results))
	for topic := range results {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	measures := measureNames(results)

	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	if err := w.Write(append([]string{"Topic"}, measures...)); err != nil {
		return "", err
	}
	for _, topic := range topics {
		record := make([]string, len(measures)+1)
		record[0] = topic
		for i, measure := range measures {
			if v, ok := results[topic][measure]; ok {
				record[i+1] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

// Summary averages every measure over the topics that report it. NumQ is the
// number of topics.
func Summary(results map[string]map[string]float64) map[string]float64 {
	values := make(map[string][]float64)
	for _, evals := range results {
		for measure, value := range evals {
			values[measure] = append(values[measure], value)
		}
	}
	avgs := make(map[string]float64, len(values)+1)
	for measure, v := range values {
		avgs[measure] = stat.Mean(v, nil)
	}
	avgs["NumQ"] = float64(len(results))
	return avgs
}

// SummaryFormatter outputs the Summary of the results as JSON.
func SummaryFormatter(results map[string]map[string]float64) (string, error) {
	v, err := json.MarshalIndent(Summary(results), "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func measureNames(results map[string]map[string]float64) []string {
	seen := make(map[string]bool)
	var names []string
	for _, evals := range results {
		for measure := range evals {
			if !seen[measure] {
				seen[measure] = true
				names = append(names, measure)
			}
		}
	}
	sort.Strings(names)
	return names
}
