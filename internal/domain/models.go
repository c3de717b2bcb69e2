package domain

import "time"

// Question is one imported multiple-choice question derived from a video clip.
type Question struct {
	VideoID       string   `json:"video_id"`
	QuestionID    string   `json:"question_id"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	AnswerChoice  string   `json:"answer_choice"`
	FinalCategory string   `json:"final_category"`
}

// VideoPath returns the relative path of the clip this question refers to.
func (q Question) VideoPath() string {
	return "videos/" + q.VideoID + ".mp4"
}

// User is a registered annotator.
type User struct {
	Username  string
	CreatedAt time.Time
}

// Answer is one immutable submission. The same (user, question) pair may
// appear more than once; every submission is retained.
type Answer struct {
	Username       string
	QuestionID     string
	SelectedChoice string
	Correct        bool
	AnsweredAt     time.Time
}

// Label is the current category a user assigned to a question. At most one
// exists per (user, question); re-submission overwrites it.
type Label struct {
	Username   string
	QuestionID string
	Label      string
	LabeledAt  time.Time
}

// Tally accumulates correct/total counts for one aggregation bucket.
type Tally struct {
	Correct int
	Total   int
}

// Statistics is the full aggregation output, recomputed from the logs on
// every request. Maps are unsorted; presentation is the caller's job.
type Statistics struct {
	UserStats         map[string]Tally
	CategoryStats     map[string]Tally
	UserCategoryStats map[string]map[string]Tally
	LabelCounts       map[string]int
	Categories        []string
}
