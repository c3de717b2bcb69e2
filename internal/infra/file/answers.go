package file

import (
	"context"
	"sync"
	"time"

	"clipquiz/internal/domain"
	"go.uber.org/zap"
)

var answerHeader = []string{"username", "question_id", "selected_choice", "correct", "answered_at"}

// AnswerLog is the CSV-backed, append-only log of submissions. Rows are
// never updated or deleted; repeated submissions for the same (user,
// question) pair all stay on disk.
type AnswerLog struct {
	path   string
	logger *zap.Logger
	clock  func() time.Time

	mu sync.Mutex
}

func NewAnswerLog(path string, logger *zap.Logger) (*AnswerLog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ensureCSV(path, answerHeader); err != nil {
		return nil, err
	}
	return &AnswerLog{path: path, logger: logger, clock: time.Now}, nil
}

// NewAnswerLogWithClock is for deterministic timestamps in tests.
func NewAnswerLogWithClock(path string, logger *zap.Logger, clock func() time.Time) (*AnswerLog, error) {
	l, err := NewAnswerLog(path, logger)
	if err != nil {
		return nil, err
	}
	l.clock = clock
	return l, nil
}

// Record appends one immutable answer row stamped with the current time.
func (l *AnswerLog) Record(ctx context.Context, username, questionID, selectedChoice string, correct bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	flag := "0"
	if correct {
		flag = "1"
	}
	return appendCSVRow(l.path, []string{
		username,
		questionID,
		selectedChoice,
		flag,
		l.clock().Format(time.RFC3339),
	})
}

// HasAnswered reports whether at least one answer row exists for the pair.
func (l *AnswerLog) HasAnswered(ctx context.Context, username, questionID string) (bool, error) {
	rows, err := l.rows()
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row[0] == username && row[1] == questionID {
			return true, nil
		}
	}
	return false, nil
}

// AnsweredIDs returns the set of question IDs the user has answered at
// least once. Used by question selection to filter the catalog.
func (l *AnswerLog) AnsweredIDs(ctx context.Context, username string) (map[string]struct{}, error) {
	rows, err := l.rows()
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{})
	for _, row := range rows {
		if row[0] == username {
			ids[row[1]] = struct{}{}
		}
	}
	return ids, nil
}

// All returns every readable answer row for aggregation.
func (l *AnswerLog) All(ctx context.Context) ([]domain.Answer, error) {
	rows, err := l.rows()
	if err != nil {
		return nil, err
	}
	answers := make([]domain.Answer, 0, len(rows))
	for _, row := range rows {
		answered, _ := time.Parse(time.RFC3339, row[4])
		answers = append(answers, domain.Answer{
			Username:       row[0],
			QuestionID:     row[1],
			SelectedChoice: row[2],
			Correct:        row[3] == "1",
			AnsweredAt:     answered,
		})
	}
	return answers, nil
}

func (l *AnswerLog) rows() ([][]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rows, skipped, err := readCSVRows(l.path, len(answerHeader))
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		l.logger.Debug("skipped unreadable answer rows", zap.Int("count", skipped))
	}
	return rows, nil
}
