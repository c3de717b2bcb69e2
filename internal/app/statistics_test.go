package app_test

import (
	"context"
	"testing"

	"clipquiz/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func TestComputeStatisticsWorkedExample(t *testing.T) {
	service, _ := newTestService(t, sampleQuestions()...)
	ctx := context.Background()

	if _, err := service.SubmitAnswer(ctx, "alice", "q1", "A", ""); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := service.SubmitAnswer(ctx, "alice", "q2", "C", "Counting"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	stats, err := service.ComputeStatistics(ctx)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	want := domain.Statistics{
		UserStats: map[string]domain.Tally{
			"alice": {Correct: 1, Total: 2},
		},
		CategoryStats: map[string]domain.Tally{
			"Counting":          {Correct: 1, Total: 1},
			"Vertical position": {Correct: 0, Total: 1},
		},
		UserCategoryStats: map[string]map[string]domain.Tally{
			"alice": {
				"Counting":          {Correct: 1, Total: 1},
				"Vertical position": {Correct: 0, Total: 1},
			},
		},
		LabelCounts: map[string]int{
			"Counting": 1,
		},
		Categories: domain.Categories(),
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("statistics mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStatisticsToleratesOrphanedAnswers(t *testing.T) {
	service, deps := newTestService(t, sampleQuestions()...)
	ctx := context.Background()

	if _, err := service.SubmitAnswer(ctx, "alice", "q1", "A", ""); err != nil {
		t.Fatalf("submit: %v", err)
	}
	// Simulate a catalog edited after answering: the row exists but its
	// question no longer resolves.
	if err := deps.answers.Record(ctx, "alice", "q-removed", "A", true); err != nil {
		t.Fatalf("record orphan: %v", err)
	}

	stats, err := service.ComputeStatistics(ctx)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if got := stats.UserStats["alice"]; got != (domain.Tally{Correct: 2, Total: 2}) {
		t.Fatalf("user totals must include orphans, got %+v", got)
	}
	categoryTotal := 0
	for _, tally := range stats.CategoryStats {
		categoryTotal += tally.Total
	}
	if categoryTotal != 1 {
		t.Fatalf("category totals must exclude orphans, got %d", categoryTotal)
	}
}

func TestComputeStatisticsFirstMatchWinsOnDuplicates(t *testing.T) {
	questions := sampleQuestions()
	duplicate := questions[0]
	duplicate.FinalCategory = "Motion and Trajectory"
	questions = append(questions, duplicate)

	service, _ := newTestService(t, questions...)
	ctx := context.Background()

	if _, err := service.SubmitAnswer(ctx, "alice", "q1", "A", ""); err != nil {
		t.Fatalf("submit: %v", err)
	}
	stats, err := service.ComputeStatistics(ctx)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if _, ok := stats.CategoryStats["Motion and Trajectory"]; ok {
		t.Fatal("duplicate record must not shadow the first-imported category")
	}
	if got := stats.CategoryStats["Counting"]; got != (domain.Tally{Correct: 1, Total: 1}) {
		t.Fatalf("expected Counting tally from first record, got %+v", got)
	}
}

func TestComputeStatisticsCountsLatestLabelsOnly(t *testing.T) {
	service, _ := newTestService(t, sampleQuestions()...)
	ctx := context.Background()

	if _, err := service.SubmitAnswer(ctx, "alice", "q1", "A", "Counting"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := service.SubmitAnswer(ctx, "alice", "q1", "A", "Vertical position"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := service.SubmitAnswer(ctx, "bob", "q1", "A", "Vertical position"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	stats, err := service.ComputeStatistics(ctx)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	want := map[string]int{"Vertical position": 2}
	if diff := cmp.Diff(want, stats.LabelCounts); diff != "" {
		t.Fatalf("label counts mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStatisticsEmptyLogs(t *testing.T) {
	service, _ := newTestService(t)
	stats, err := service.ComputeStatistics(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(stats.UserStats) != 0 || len(stats.CategoryStats) != 0 || len(stats.LabelCounts) != 0 {
		t.Fatalf("expected empty aggregation, got %+v", stats)
	}
	if len(stats.Categories) != 10 {
		t.Fatalf("category set must always be present, got %d entries", len(stats.Categories))
	}
}
