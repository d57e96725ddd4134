// Package report summarizes the loaded requirement data for post-run
// verification.
package report

import (
	"context"
	"sort"

	"github.com/montanaflynn/stats"

	"goexchange/ports"
)

// ExamSummary is the descriptive statistics for one exam's stored
// minimum scores.
type ExamSummary struct {
	ExamType    string  `json:"exam_type"`
	Count       int     `json:"count"`
	Unavailable int     `json:"unavailable"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Mean        float64 `json:"mean"`
	Median      float64 `json:"median"`
	P90         float64 `json:"p90"`
}

// Report is one verification snapshot of the database.
type Report struct {
	Universities int           `json:"universities"`
	Requirements int           `json:"requirements"`
	Exams        []ExamSummary `json:"exams"`
}

// Build computes per-exam score distributions over the stored rows.
func Build(ctx context.Context, repo ports.UniversityRepository) (*Report, error) {
	universities, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := repo.AllRequirements(ctx)
	if err != nil {
		return nil, err
	}

	scores := map[string][]float64{}
	unavailable := map[string]int{}
	for _, row := range rows {
		if !row.IsAvailable {
			unavailable[row.ExamType]++
		}
		if row.MinScore != nil {
			scores[row.ExamType] = append(scores[row.ExamType], *row.MinScore)
		}
	}

	exams := make([]string, 0, len(scores))
	for exam := range scores {
		exams = append(exams, exam)
	}
	for exam := range unavailable {
		if _, ok := scores[exam]; !ok {
			exams = append(exams, exam)
		}
	}
	sort.Strings(exams)

	rep := &Report{Universities: len(universities), Requirements: len(rows)}
	for _, exam := range exams {
		summary := ExamSummary{ExamType: exam, Unavailable: unavailable[exam]}
		data := scores[exam]
		summary.Count = len(data)
		if len(data) > 0 {
			summary.Min, _ = stats.Min(data)
			summary.Max, _ = stats.Max(data)
			summary.Mean, _ = stats.Mean(data)
			summary.Median, _ = stats.Median(data)
			summary.P90, _ = stats.Percentile(data, 90)
		}
		rep.Exams = append(rep.Exams, summary)
	}
	return rep, nil
}
