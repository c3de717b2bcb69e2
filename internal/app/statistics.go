package app

import (
	"context"

	"clipquiz/internal/domain"
)

// ComputeStatistics derives the full aggregation from the durable logs.
// There is no cached or incremental state; every call rescans the catalog,
// the answer log, and the label store.
//
// Answers whose question ID no longer resolves in the catalog still count
// toward the per-user totals, just not toward any category. That tolerance
// keeps old answers meaningful after the catalog file is edited.
func (s *QuizService) ComputeStatistics(ctx context.Context) (domain.Statistics, error) {
	questions, err := s.catalog.All(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	// First match wins on duplicate IDs, matching Lookup.
	index := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		if _, ok := index[q.QuestionID]; !ok {
			index[q.QuestionID] = q
		}
	}

	stats := domain.Statistics{
		UserStats:         make(map[string]domain.Tally),
		CategoryStats:     make(map[string]domain.Tally),
		UserCategoryStats: make(map[string]map[string]domain.Tally),
		LabelCounts:       make(map[string]int),
		Categories:        domain.Categories(),
	}

	answers, err := s.answers.All(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	for _, a := range answers {
		stats.UserStats[a.Username] = bump(stats.UserStats[a.Username], a.Correct)

		q, ok := index[a.QuestionID]
		if !ok {
			continue // orphaned answer
		}
		stats.CategoryStats[q.FinalCategory] = bump(stats.CategoryStats[q.FinalCategory], a.Correct)

		byCategory := stats.UserCategoryStats[a.Username]
		if byCategory == nil {
			byCategory = make(map[string]domain.Tally)
			stats.UserCategoryStats[a.Username] = byCategory
		}
		byCategory[q.FinalCategory] = bump(byCategory[q.FinalCategory], a.Correct)
	}

	labels, err := s.labels.All(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	for _, l := range labels {
		stats.LabelCounts[l.Label]++
	}
	return stats, nil
}

func bump(t domain.Tally, correct bool) domain.Tally {
	t.Total++
	if correct {
		t.Correct++
	}
	return t
}
