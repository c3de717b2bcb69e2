package file

import (
	"context"
	"sync"
	"time"

	"clipquiz/internal/domain"
	"go.uber.org/zap"
)

var labelHeader = []string{"username", "question_id", "label", "labeled_at"}

// LabelStore is the CSV-backed upsert store keyed by (username, question).
// Unlike the answer log, re-submission overwrites: at most one row exists
// per key, holding the latest label and timestamp.
//
// Upsert is a read-modify-rewrite. The store mutex is held across the whole
// region, so concurrent upserts serialize instead of racing on the rewrite.
type LabelStore struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

func NewLabelStore(path string, logger *zap.Logger) (*LabelStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ensureCSV(path, labelHeader); err != nil {
		return nil, err
	}
	return &LabelStore{path: path, logger: logger}, nil
}

// Upsert sets the label for (username, questionID). An existing row is
// overwritten in place; otherwise a new row is appended.
func (s *LabelStore) Upsert(ctx context.Context, username, questionID, label string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, skipped, err := readCSVRows(s.path, len(labelHeader))
	if err != nil {
		return err
	}
	if skipped > 0 {
		s.logger.Debug("skipped unreadable label rows", zap.Int("count", skipped))
	}

	stamp := at.Format(time.RFC3339)
	for i, row := range rows {
		if row[0] == username && row[1] == questionID {
			rows[i][2] = label
			rows[i][3] = stamp
			return rewriteCSV(s.path, labelHeader, rows)
		}
	}
	return appendCSVRow(s.path, []string{username, questionID, label, stamp})
}

// Get returns the current label for the pair, if any.
func (s *LabelStore) Get(ctx context.Context, username, questionID string) (string, bool, error) {
	rows, err := s.rows()
	if err != nil {
		return "", false, err
	}
	for _, row := range rows {
		if row[0] == username && row[1] == questionID {
			return row[2], true, nil
		}
	}
	return "", false, nil
}

// All returns the current label rows. Because Upsert overwrites in place,
// every row already reflects the latest value for its key.
func (s *LabelStore) All(ctx context.Context) ([]domain.Label, error) {
	rows, err := s.rows()
	if err != nil {
		return nil, err
	}
	labels := make([]domain.Label, 0, len(rows))
	for _, row := range rows {
		labeled, _ := time.Parse(time.RFC3339, row[3])
		labels = append(labels, domain.Label{
			Username:   row[0],
			QuestionID: row[1],
			Label:      row[2],
			LabeledAt:  labeled,
		})
	}
	return labels, nil
}

func (s *LabelStore) rows() ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, skipped, err := readCSVRows(s.path, len(labelHeader))
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		s.logger.Debug("skipped unreadable label rows", zap.Int("count", skipped))
	}
	return rows, nil
}
