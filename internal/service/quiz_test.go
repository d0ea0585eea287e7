package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/quiz/internal/domain/question"
	quizsession "github.com/remaimber-it/quiz/internal/domain/quiz_session"
	"github.com/remaimber-it/quiz/internal/domain/record"
	"github.com/remaimber-it/quiz/internal/service"
	"github.com/remaimber-it/quiz/internal/store"
)

func newService(t *testing.T, s store.RecordStore) *service.QuizService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if s == nil {
		s = store.NewRecordStore(store.NewMemory(), logger)
	}
	c := quizsession.NewController(quizsession.WithRand(rand.New(rand.NewPCG(7, 7))))
	return service.NewQuizService(s, c, logger)
}

// playPerfect answers every question of the live session correctly.
func playPerfect(t *testing.T, svc *service.QuizService) quizsession.Outcome {
	t.Helper()
	var outcome quizsession.Outcome
	for {
		q, _, ok := svc.Current()
		if !ok {
			return outcome
		}
		var err error
		outcome, err = svc.Answer(context.Background(), q.CorrectIndex)
		require.NoError(t, err)
	}
}

// countingStore counts loads and can be told to fail appends.
type countingStore struct {
	store.RecordStore
	loads     int
	appendErr error
}

func (s *countingStore) Load(ctx context.Context) ([]record.Record, error) {
	s.loads++
	return s.RecordStore.Load(ctx)
}

func (s *countingStore) Append(ctx context.Context, rec record.Record) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	return s.RecordStore.Append(ctx, rec)
}

func TestNewQuizService_DefaultPool(t *testing.T) {
	svc := newService(t, nil)

	assert.Equal(t, question.DefaultPool(), svc.Pool())
	assert.Equal(t, "default", svc.PoolSource())
}

func TestLoadQuestions_ReplacesPool(t *testing.T) {
	svc := newService(t, nil)

	n, err := svc.LoadQuestions(question.SampleFile, "sample.txt")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Len(t, svc.Pool(), 5)
	assert.Equal(t, "sample.txt", svc.PoolSource())
}

func TestLoadQuestions_KeepsPreviousPoolOnError(t *testing.T) {
	svc := newService(t, nil)
	before := svc.Pool()

	_, err := svc.LoadQuestions("Prompt\nA\nB\nC\nD\n9\n", "bad.txt")
	var perr *question.ParseError
	require.True(t, errors.As(err, &perr))

	assert.Equal(t, before, svc.Pool())
	assert.Equal(t, "default", svc.PoolSource())
}

func TestLoadQuestionFile(t *testing.T) {
	svc := newService(t, nil)
	path := filepath.Join(t.TempDir(), "questions.txt")
	require.NoError(t, os.WriteFile(path, []byte(question.SampleFile), 0o644))

	n, err := svc.LoadQuestionFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, path, svc.PoolSource())

	_, err = svc.LoadQuestionFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.Equal(t, path, svc.PoolSource())
}

func TestCompletedSessionIsRecorded(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	session, err := svc.Start(quizsession.SessionConfig{SampleSize: 5})
	require.NoError(t, err)
	require.Len(t, session.Questions, 5)

	outcome := playPerfect(t, svc)
	require.NotNil(t, outcome.Record)
	assert.Equal(t, 5, outcome.Record.Score)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, *outcome.Record, history[0])

	stats, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, record.Stats{TotalQuestions: 5, TotalCorrect: 5, AccuracyRate: 100, SessionCount: 1}, stats)
}

func TestSummary_CachedUntilHistoryChanges(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cs := &countingStore{RecordStore: store.NewRecordStore(store.NewMemory(), logger)}
	svc := newService(t, cs)

	_, err := svc.Summary(ctx)
	require.NoError(t, err)
	_, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cs.loads)

	_, err = svc.Start(quizsession.SessionConfig{SampleSize: 2})
	require.NoError(t, err)
	playPerfect(t, svc)

	stats, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.SessionCount)

	require.NoError(t, svc.Clear(ctx))
	stats, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, record.Stats{}, stats)
}

func TestAnswer_SaveFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cs := &countingStore{
		RecordStore: store.NewRecordStore(store.NewMemory(), logger),
		appendErr:   errors.New("disk full"),
	}
	svc := newService(t, cs)

	_, err := svc.Start(quizsession.SessionConfig{SampleSize: 1})
	require.NoError(t, err)

	q, _, ok := svc.Current()
	require.True(t, ok)
	outcome, err := svc.Answer(context.Background(), q.CorrectIndex)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	require.NotNil(t, outcome.Record, "the finished record is still reported")
	assert.Equal(t, 1, outcome.Record.Score)
}

func TestAnswer_Errors(t *testing.T) {
	svc := newService(t, nil)

	_, err := svc.Answer(context.Background(), 0)
	var serr *quizsession.StateError
	assert.True(t, errors.As(err, &serr))

	_, err = svc.Start(quizsession.DefaultConfig())
	require.NoError(t, err)

	_, err = svc.Answer(context.Background(), 7)
	var ierr *question.InvalidInputError
	assert.True(t, errors.As(err, &ierr))
}

func TestAbandon_DoesNotRecord(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	_, err := svc.Start(quizsession.DefaultConfig())
	require.NoError(t, err)
	_, err = svc.Answer(ctx, 0)
	require.NoError(t, err)

	svc.Abandon()

	assert.Nil(t, svc.Session())
	history, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStart_SampleLargerThanPool(t *testing.T) {
	svc := newService(t, nil)

	s, err := svc.Start(quizsession.SessionConfig{SampleSize: 50})
	require.NoError(t, err)
	assert.Len(t, s.Questions, len(question.DefaultPool()))
	assert.WithinDuration(t, time.Now(), s.StartTime, time.Minute)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Start(quizsession.DefaultConfig())
		require.NoError(t, err)
		playPerfect(t, svc)
	}

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)

	require.NoError(t, svc.Clear(ctx))

	history, err = svc.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}
