package file

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"clipquiz/internal/domain"
	"go.uber.org/zap"
)

// maxLineBytes bounds a single catalog line. Question records are small;
// anything past this is corrupt input.
const maxLineBytes = 1 << 20

// Catalog is the append-only JSONL store of imported questions. Imports
// never rewrite existing records, and duplicate question IDs are permitted
// in storage; reads resolve them first-match-wins in file order.
type Catalog struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

func NewCatalog(path string, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{path: path, logger: logger}
}

// Import appends every valid question line from src and returns how many
// were kept. Lines that are not JSON objects or miss a required field are
// skipped, not errors. Valid lines are appended verbatim.
func (c *Catalog) Import(ctx context.Context, src io.Reader) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return 0, fmt.Errorf("create data dir: %w", err)
	}
	out, err := os.OpenFile(c.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open catalog: %w", err)
	}
	defer out.Close()

	imported := 0
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return imported, err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if _, err := domain.ParseQuestion(line); err != nil {
			c.logger.Debug("skipping question record", zap.Error(err))
			continue
		}
		if _, err := out.Write(append(line, '\n')); err != nil {
			return imported, fmt.Errorf("append question: %w", err)
		}
		imported++
	}
	if err := scanner.Err(); err != nil {
		return imported, fmt.Errorf("read import source: %w", err)
	}
	return imported, nil
}

// Lookup scans the catalog and returns the first record with the given ID.
// With duplicate imports the earliest record wins; see DESIGN.md for the
// rationale behind keeping that behavior.
func (c *Catalog) Lookup(ctx context.Context, questionID string) (domain.Question, error) {
	var (
		found domain.Question
		ok    bool
	)
	err := c.scan(ctx, func(q domain.Question) bool {
		if q.QuestionID == questionID {
			found, ok = q, true
			return false
		}
		return true
	})
	if err != nil {
		return domain.Question{}, err
	}
	if !ok {
		return domain.Question{}, domain.ErrQuestionNotFound
	}
	return found, nil
}

// All materializes every readable question in file order.
func (c *Catalog) All(ctx context.Context) ([]domain.Question, error) {
	var questions []domain.Question
	err := c.scan(ctx, func(q domain.Question) bool {
		questions = append(questions, q)
		return true
	})
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// scan streams decodable records to fn until fn returns false. Undecodable
// lines are skipped. A missing catalog file reads as empty.
func (c *Catalog) scan(ctx context.Context, fn func(domain.Question) bool) error {
	f, err := os.Open(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		q, err := domain.ParseQuestion(line)
		if err != nil {
			c.logger.Debug("skipping unreadable catalog line", zap.Error(err))
			continue
		}
		if !fn(q) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	return nil
}
