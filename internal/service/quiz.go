// internal/service/quiz.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/remaimber-it/quiz/internal/domain/question"
	quizsession "github.com/remaimber-it/quiz/internal/domain/quiz_session"
	"github.com/remaimber-it/quiz/internal/domain/record"
	"github.com/remaimber-it/quiz/internal/store"
)

// QuizService ties the question pool, the session controller and the
// record history together. It owns the cached statistics so the store
// stays a pure persistence layer.
//
// Like the controller, it serves one user and is not safe for concurrent use.
type QuizService struct {
	store      store.RecordStore
	controller *quizsession.Controller
	logger     *slog.Logger

	pool       []question.Question
	poolSource string

	stats *record.Stats // nil = must be recomputed
}

// NewQuizService creates a QuizService that starts with the built-in pool.
func NewQuizService(s store.RecordStore, c *quizsession.Controller, logger *slog.Logger) *QuizService {
	return &QuizService{
		store:      s,
		controller: c,
		logger:     logger,
		pool:       question.DefaultPool(),
		poolSource: "default",
	}
}

// ============================================================================
// Question pool
// ============================================================================

// Pool returns a copy of the active question pool.
func (qs *QuizService) Pool() []question.Question {
	return append([]question.Question(nil), qs.pool...)
}

// PoolSource names where the active pool came from.
func (qs *QuizService) PoolSource() string {
	return qs.poolSource
}

// LoadQuestions parses content and, only if it is valid, makes it the
// active pool. On error the previous pool stays in place.
func (qs *QuizService) LoadQuestions(content, source string) (int, error) {
	questions, err := question.Parse(content)
	if err != nil {
		qs.logger.Warn("question file rejected", "source", source, "error", err)
		return 0, err
	}
	qs.setPool(questions, source)
	return len(questions), nil
}

// LoadQuestionFile reads and parses the file at path, see LoadQuestions.
func (qs *QuizService) LoadQuestionFile(path string) (int, error) {
	questions, err := question.ParseFile(path)
	if err != nil {
		qs.logger.Warn("question file rejected", "source", path, "error", err)
		return 0, err
	}
	qs.setPool(questions, path)
	return len(questions), nil
}

func (qs *QuizService) setPool(questions []question.Question, source string) {
	qs.pool = questions
	qs.poolSource = source
	qs.logger.Info("question pool loaded", "source", source, "questions", len(questions))
}

// ============================================================================
// Sessions
// ============================================================================

// Start begins a new session drawn from the active pool.
func (qs *QuizService) Start(config quizsession.SessionConfig) (*quizsession.Session, error) {
	session, err := qs.controller.Start(qs.pool, config)
	if err != nil {
		return nil, err
	}
	qs.logger.Info("session started",
		"session_id", session.ID,
		"questions", len(session.Questions),
		"pool", qs.poolSource,
	)
	return session, nil
}

// Current returns the question awaiting an answer.
func (qs *QuizService) Current() (question.Question, int, bool) {
	return qs.controller.Current()
}

// Session returns a copy of the live session, or nil.
func (qs *QuizService) Session() *quizsession.Session {
	return qs.controller.Session()
}

// Answer submits choice for the current question. When it completes the
// session the record is appended to the history. If saving fails the
// outcome is still returned together with the error.
func (qs *QuizService) Answer(ctx context.Context, choice int) (quizsession.Outcome, error) {
	outcome, err := qs.controller.Answer(choice)
	if err != nil {
		return quizsession.Outcome{}, err
	}
	if outcome.Record == nil {
		return outcome, nil
	}

	rec := *outcome.Record
	qs.stats = nil
	if err := qs.store.Append(ctx, rec); err != nil {
		qs.logger.Error("failed to save record", "session_id", rec.ID, "error", err)
		return outcome, fmt.Errorf("save session record: %w", err)
	}

	qs.logger.Info("session completed",
		"session_id", rec.ID,
		"score", rec.Score,
		"questions", rec.QuestionCount,
		"duration_ms", rec.DurationMs,
	)
	return outcome, nil
}

// Abandon discards the live session without recording it.
func (qs *QuizService) Abandon() {
	if s := qs.controller.Session(); s != nil {
		qs.logger.Info("session abandoned", "session_id", s.ID, "answered", len(s.Answers))
	}
	qs.controller.Reset()
}

// ============================================================================
// History
// ============================================================================

// History returns every stored record in chronological order.
func (qs *QuizService) History(ctx context.Context) ([]record.Record, error) {
	return qs.store.Load(ctx)
}

// Clear deletes the whole history.
func (qs *QuizService) Clear(ctx context.Context) error {
	qs.stats = nil
	return qs.store.Clear(ctx)
}

// Summary returns statistics over the whole history. The result is cached
// until the history changes through this service.
func (qs *QuizService) Summary(ctx context.Context) (record.Stats, error) {
	if qs.stats != nil {
		return *qs.stats, nil
	}

	records, err := qs.store.Load(ctx)
	if err != nil {
		return record.Stats{}, err
	}
	stats := record.Summarize(records)
	qs.stats = &stats
	return stats, nil
}
