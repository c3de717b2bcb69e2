package memory

import (
	"context"
	"sync"
	"time"

	"clipquiz/internal/domain"
)

// AnswerLog is an in-memory implementation of app.AnswerLog.
type AnswerLog struct {
	mu      sync.RWMutex
	answers []domain.Answer
	clock   func() time.Time
}

func NewAnswerLog() *AnswerLog {
	return &AnswerLog{clock: time.Now}
}

// NewAnswerLogWithClock is for deterministic timestamps in tests.
func NewAnswerLogWithClock(clock func() time.Time) *AnswerLog {
	return &AnswerLog{clock: clock}
}

func (l *AnswerLog) Record(ctx context.Context, username, questionID, selectedChoice string, correct bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.answers = append(l.answers, domain.Answer{
		Username:       username,
		QuestionID:     questionID,
		SelectedChoice: selectedChoice,
		Correct:        correct,
		AnsweredAt:     l.clock(),
	})
	return nil
}

func (l *AnswerLog) HasAnswered(ctx context.Context, username, questionID string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, a := range l.answers {
		if a.Username == username && a.QuestionID == questionID {
			return true, nil
		}
	}
	return false, nil
}

func (l *AnswerLog) AnsweredIDs(ctx context.Context, username string) (map[string]struct{}, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make(map[string]struct{})
	for _, a := range l.answers {
		if a.Username == username {
			ids[a.QuestionID] = struct{}{}
		}
	}
	return ids, nil
}

func (l *AnswerLog) All(ctx context.Context) ([]domain.Answer, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Answer, len(l.answers))
	copy(out, l.answers)
	return out, nil
}
