package memory

import (
	"context"
	"sync"
	"time"

	"clipquiz/internal/domain"
)

// Registry is an in-memory implementation of app.UserRegistry.
type Registry struct {
	mu    sync.RWMutex
	users map[string]time.Time
	clock func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{users: make(map[string]time.Time), clock: time.Now}
}

func (r *Registry) Register(ctx context.Context, username string) error {
	if len(username) < 3 {
		return domain.ErrInvalidUsername
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; ok {
		return domain.ErrDuplicateUser
	}
	r.users[username] = r.clock()
	return nil
}

func (r *Registry) Exists(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[username]
	return ok, nil
}

func (r *Registry) All(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]domain.User, 0, len(r.users))
	for username, created := range r.users {
		users = append(users, domain.User{Username: username, CreatedAt: created})
	}
	return users, nil
}
