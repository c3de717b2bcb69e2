package file

import (
	"context"
	"sync"
	"time"

	"clipquiz/internal/domain"
	"go.uber.org/zap"
)

var userHeader = []string{"username", "created_at"}

// Registry is the CSV-backed user registry. Registration is append-only;
// the duplicate check and the append happen under one lock so two
// concurrent signups for the same name cannot both succeed.
type Registry struct {
	path   string
	logger *zap.Logger
	clock  func() time.Time

	mu sync.Mutex
}

func NewRegistry(path string, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ensureCSV(path, userHeader); err != nil {
		return nil, err
	}
	return &Registry{path: path, logger: logger, clock: time.Now}, nil
}

// NewRegistryWithClock is for deterministic timestamps in tests.
func NewRegistryWithClock(path string, logger *zap.Logger, clock func() time.Time) (*Registry, error) {
	r, err := NewRegistry(path, logger)
	if err != nil {
		return nil, err
	}
	r.clock = clock
	return r, nil
}

func (r *Registry) Register(ctx context.Context, username string) error {
	if len(username) < 3 {
		return domain.ErrInvalidUsername
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	taken, err := r.contains(username)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicateUser
	}
	return appendCSVRow(r.path, []string{username, r.clock().Format(time.RFC3339)})
}

func (r *Registry) Exists(ctx context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contains(username)
}

// All returns every registered user in signup order.
func (r *Registry) All(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, skipped, err := readCSVRows(r.path, 2)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		r.logger.Debug("skipped unreadable user rows", zap.Int("count", skipped))
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		created, _ := time.Parse(time.RFC3339, row[1])
		users = append(users, domain.User{Username: row[0], CreatedAt: created})
	}
	return users, nil
}

func (r *Registry) contains(username string) (bool, error) {
	rows, skipped, err := readCSVRows(r.path, 1)
	if err != nil {
		return false, err
	}
	if skipped > 0 {
		r.logger.Debug("skipped unreadable user rows", zap.Int("count", skipped))
	}
	for _, row := range rows {
		if row[0] == username {
			return true, nil
		}
	}
	return false, nil
}
