package memory

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"sync"

	"clipquiz/internal/domain"
)

// Catalog is an in-memory implementation of app.QuestionCatalog with the
// same semantics as the file store: append-only, duplicates permitted,
// lookups resolve first-match-wins in insertion order.
type Catalog struct {
	mu        sync.RWMutex
	questions []domain.Question
}

func NewCatalog(questions ...domain.Question) *Catalog {
	return &Catalog{questions: questions}
}

func (c *Catalog) Import(ctx context.Context, src io.Reader) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	imported := 0
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		q, err := domain.ParseQuestion(line)
		if err != nil {
			continue
		}
		c.questions = append(c.questions, q)
		imported++
	}
	if err := scanner.Err(); err != nil {
		return imported, err
	}
	return imported, nil
}

func (c *Catalog) Lookup(ctx context.Context, questionID string) (domain.Question, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, q := range c.questions {
		if q.QuestionID == questionID {
			return q, nil
		}
	}
	return domain.Question{}, domain.ErrQuestionNotFound
}

func (c *Catalog) All(ctx context.Context) ([]domain.Question, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Question, len(c.questions))
	copy(out, c.questions)
	return out, nil
}
