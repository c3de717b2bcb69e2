package memory

import (
	"context"
	"sync"
	"time"

	"clipquiz/internal/domain"
)

type labelKey struct {
	username   string
	questionID string
}

// LabelStore is an in-memory implementation of app.LabelStore with upsert
// semantics: the latest value per (user, question) wins.
type LabelStore struct {
	mu     sync.RWMutex
	labels map[labelKey]domain.Label
}

func NewLabelStore() *LabelStore {
	return &LabelStore{labels: make(map[labelKey]domain.Label)}
}

func (s *LabelStore) Upsert(ctx context.Context, username, questionID, label string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels[labelKey{username, questionID}] = domain.Label{
		Username:   username,
		QuestionID: questionID,
		Label:      label,
		LabeledAt:  at,
	}
	return nil
}

func (s *LabelStore) Get(ctx context.Context, username, questionID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.labels[labelKey{username, questionID}]; ok {
		return l.Label, true, nil
	}
	return "", false, nil
}

func (s *LabelStore) All(ctx context.Context) ([]domain.Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Label, 0, len(s.labels))
	for _, l := range s.labels {
		out = append(out, l)
	}
	return out, nil
}
