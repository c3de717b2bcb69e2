package domain_test

import (
	"errors"
	"testing"

	"clipquiz/internal/domain"
)

func TestParseQuestion(t *testing.T) {
	line := `{"video_id":"v1","question_id":"q1","question_text":"Where is the cat?","options":["On the sofa","Under the table"],"answer_choice":"On the sofa","final_category":"Counting"}`
	q, err := domain.ParseQuestion([]byte(line))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.QuestionID != "q1" || q.VideoID != "v1" {
		t.Fatalf("unexpected identifiers: %+v", q)
	}
	if len(q.Options) != 2 || q.AnswerChoice != "On the sofa" {
		t.Fatalf("unexpected options: %+v", q)
	}
	if q.VideoPath() != "videos/v1.mp4" {
		t.Fatalf("unexpected video path %q", q.VideoPath())
	}
}

func TestParseQuestionRejectsBadRecords(t *testing.T) {
	cases := map[string]string{
		"not json":      `{oops`,
		"missing field": `{"video_id":"v1","question_id":"q1","question_text":"?","options":["A"],"answer_choice":"A"}`,
		"null field":    `{"video_id":"v1","question_id":"q1","question_text":"?","options":null,"answer_choice":"A","final_category":"Counting"}`,
		"json array":    `["video_id","question_id"]`,
	}
	for name, line := range cases {
		if _, err := domain.ParseQuestion([]byte(line)); !errors.Is(err, domain.ErrMalformedRecord) {
			t.Fatalf("%s: expected ErrMalformedRecord, got %v", name, err)
		}
	}
}

func TestValidCategory(t *testing.T) {
	if !domain.ValidCategory("Counting") {
		t.Fatal("Counting should be valid")
	}
	if !domain.ValidCategory("Front–Back & Proximity") {
		t.Fatal("Front–Back & Proximity should be valid")
	}
	if domain.ValidCategory("Sorting") {
		t.Fatal("Sorting should not be valid")
	}
	if domain.ValidCategory("") {
		t.Fatal("empty label should not be valid")
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	got := domain.Categories()
	if len(got) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(got))
	}
	got[0] = "mutated"
	if domain.Categories()[0] == "mutated" {
		t.Fatal("Categories must not expose internal state")
	}
}
