package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"clipquiz/internal/domain"
	"go.uber.org/zap"
)

// QuestionCatalog is the append-only store of imported questions.
type QuestionCatalog interface {
	Import(ctx context.Context, src io.Reader) (int, error)
	Lookup(ctx context.Context, questionID string) (domain.Question, error)
	All(ctx context.Context) ([]domain.Question, error)
}

// UserRegistry holds registered usernames.
type UserRegistry interface {
	Register(ctx context.Context, username string) error
	Exists(ctx context.Context, username string) (bool, error)
	All(ctx context.Context) ([]domain.User, error)
}

// AnswerLog is the append-only log of submissions.
type AnswerLog interface {
	Record(ctx context.Context, username, questionID, selectedChoice string, correct bool) error
	AnsweredIDs(ctx context.Context, username string) (map[string]struct{}, error)
	All(ctx context.Context) ([]domain.Answer, error)
}

// LabelStore maps (user, question) to the latest chosen category label.
type LabelStore interface {
	Upsert(ctx context.Context, username, questionID, label string, at time.Time) error
	Get(ctx context.Context, username, questionID string) (string, bool, error)
	All(ctx context.Context) ([]domain.Label, error)
}

// QuizService contains the quiz and labeling use cases. The stores are the
// sole source of truth; every call re-reads durable state, so no staleness
// can accumulate between requests.
type QuizService struct {
	catalog QuestionCatalog
	users   UserRegistry
	answers AnswerLog
	labels  LabelStore
	logger  *zap.Logger

	now  func() time.Time
	pick func(n int) int
}

// Option customizes a QuizService; used by tests for determinism.
type Option func(*QuizService)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *QuizService) { s.now = now }
}

// WithPicker overrides the random index picker used for question selection.
func WithPicker(pick func(n int) int) Option {
	return func(s *QuizService) { s.pick = pick }
}

func NewQuizService(catalog QuestionCatalog, users UserRegistry, answers AnswerLog, labels LabelStore, logger *zap.Logger, opts ...Option) *QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &QuizService{
		catalog: catalog,
		users:   users,
		answers: answers,
		labels:  labels,
		logger:  logger,
		now:     time.Now,
		pick:    rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterUser adds a username to the registry. It fails with
// domain.ErrInvalidUsername or domain.ErrDuplicateUser; the registry is
// unchanged on failure.
func (s *QuizService) RegisterUser(ctx context.Context, username string) error {
	if err := s.users.Register(ctx, username); err != nil {
		return err
	}
	s.logger.Info("user registered", zap.String("username", username))
	return nil
}

// UserExists reports whether the username is registered.
func (s *QuizService) UserExists(ctx context.Context, username string) (bool, error) {
	return s.users.Exists(ctx, username)
}

// ListUsers returns every registered user.
func (s *QuizService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.All(ctx)
}

// ImportQuestions appends valid question records from src to the catalog
// and returns how many were imported. Invalid records are skipped silently.
func (s *QuizService) ImportQuestions(ctx context.Context, src io.Reader) (int, error) {
	count, err := s.catalog.Import(ctx, src)
	if err != nil {
		return count, err
	}
	s.logger.Info("questions imported", zap.Int("count", count))
	return count, nil
}

// NextUnansweredQuestion picks uniformly at random among the catalog
// questions the user has not answered yet. Random order keeps labeling
// effort from piling onto early catalog entries. Returns
// domain.ErrQuestionsExhausted when nothing is left.
func (s *QuizService) NextUnansweredQuestion(ctx context.Context, username string) (domain.Question, error) {
	questions, err := s.catalog.All(ctx)
	if err != nil {
		return domain.Question{}, err
	}
	answered, err := s.answers.AnsweredIDs(ctx, username)
	if err != nil {
		return domain.Question{}, err
	}

	unanswered := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := answered[q.QuestionID]; !ok {
			unanswered = append(unanswered, q)
		}
	}
	if len(unanswered) == 0 {
		return domain.Question{}, domain.ErrQuestionsExhausted
	}
	return unanswered[s.pick(len(unanswered))], nil
}

// ExistingLabelFor returns the label the user previously assigned to the
// question, if any. Used to pre-populate the label choice when a question
// is served to the same user again.
func (s *QuizService) ExistingLabelFor(ctx context.Context, username, questionID string) (string, bool, error) {
	return s.labels.Get(ctx, username, questionID)
}

// SubmitAnswer scores selectedChoice against the catalog, upserts the label
// when one is given, and appends the answer row. An unresolvable question
// ID or an out-of-set label rejects the submission before anything is
// written. Returns whether the answer was correct.
func (s *QuizService) SubmitAnswer(ctx context.Context, username, questionID, selectedChoice, label string) (bool, error) {
	question, err := s.catalog.Lookup(ctx, questionID)
	if err != nil {
		return false, err
	}
	if label != "" {
		if !domain.ValidCategory(label) {
			return false, fmt.Errorf("%w: %q", domain.ErrUnknownLabel, label)
		}
		if err := s.labels.Upsert(ctx, username, questionID, label, s.now()); err != nil {
			return false, err
		}
	}

	correct := selectedChoice == question.AnswerChoice
	if err := s.answers.Record(ctx, username, questionID, selectedChoice, correct); err != nil {
		return false, err
	}
	s.logger.Debug("answer recorded",
		zap.String("username", username),
		zap.String("question_id", questionID),
		zap.Bool("correct", correct),
	)
	return correct, nil
}
