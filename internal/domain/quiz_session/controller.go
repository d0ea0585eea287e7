package quizsession

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/remaimber-it/quiz/internal/domain/question"
	"github.com/remaimber-it/quiz/internal/domain/record"
	"github.com/remaimber-it/quiz/internal/id"
)

// State is the controller's lifecycle position.
type State int

const (
	StateIdle State = iota
	StateActive
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome describes the effect of one answer. Record is set only when the
// answer completed the session.
type Outcome struct {
	Answer   record.Answer
	Question question.Question
	Record   *record.Record
}

// Controller runs one quiz session at a time:
//
//	Idle --Start--> Active --last Answer--> Completed
//	any  --Reset--> Idle
//
// It is not safe for concurrent use.
type Controller struct {
	now     func() time.Time
	shuffle func(n int, swap func(i, j int))

	state State
	live  *Session
	last  *record.Record
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithRand draws permutations from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.shuffle = r.Shuffle }
}

// NewController returns an idle controller.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		now:     time.Now,
		shuffle: rand.Shuffle,
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Start begins a new session with a uniformly random sample of pool.
// Any live session is discarded. On error nothing changes.
func (c *Controller) Start(pool []question.Question, config SessionConfig) (*Session, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	questions := c.sample(pool, config.sampleSize())

	c.live = &Session{
		ID:          id.GenerateID(),
		Questions:   questions,
		Answers:     make([]record.Answer, 0, len(questions)),
		Score:       0,
		StartTime:   c.timestamp(),
		MaxDuration: config.MaxDuration,
	}
	c.last = nil
	c.state = StateActive

	return c.live.clone(), nil
}

// sample returns a shuffled copy of pool truncated to n questions.
// rand.Shuffle is a Fisher-Yates shuffle, so every order is equally likely.
func (c *Controller) sample(pool []question.Question, n int) []question.Question {
	shuffled := make([]question.Question, len(pool))
	copy(shuffled, pool)

	c.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// Current returns the question awaiting an answer and its position.
// ok is false unless a session is active.
func (c *Controller) Current() (q question.Question, position int, ok bool) {
	if c.state != StateActive {
		return question.Question{}, 0, false
	}
	position = len(c.live.Answers)
	return c.live.Questions[position], position, true
}

// Session returns a copy of the live session, or nil when none is active.
func (c *Controller) Session() *Session {
	if c.live == nil {
		return nil
	}
	return c.live.clone()
}

// LastRecord returns the record produced by the most recent completed
// session, or nil. Start clears it.
func (c *Controller) LastRecord() *record.Record {
	if c.last == nil {
		return nil
	}
	rec := *c.last
	rec.Answers = append([]record.Answer(nil), c.last.Answers...)
	return &rec
}

// Answer answers the current question with choice (0-based).
func (c *Controller) Answer(choice int) (Outcome, error) {
	if c.state != StateActive {
		return Outcome{}, &StateError{Op: "answer", State: c.state}
	}
	return c.AnswerAt(len(c.live.Answers), choice)
}

// AnswerAt answers the question at position, which must be the current
// one. It guards against a UI submitting the same question twice.
func (c *Controller) AnswerAt(position, choice int) (Outcome, error) {
	if c.state != StateActive {
		return Outcome{}, &StateError{Op: "answer", State: c.state}
	}

	s := c.live
	if position >= 0 && position < len(s.Answers) {
		return Outcome{}, &StateError{
			Op:     "answer",
			State:  c.state,
			Reason: fmt.Sprintf("question %d already answered", position+1),
		}
	}
	if position != len(s.Answers) {
		return Outcome{}, &question.InvalidInputError{Field: "question position", Value: fmt.Sprint(position)}
	}
	if !question.ValidChoice(choice) {
		return Outcome{}, &question.InvalidInputError{Field: "choice", Value: fmt.Sprint(choice)}
	}

	q := s.Questions[position]
	answer := record.Answer{
		QuestionIndex:  position,
		SelectedChoice: choice,
		CorrectChoice:  q.CorrectIndex,
		IsCorrect:      q.IsCorrect(choice),
	}
	s.Answers = append(s.Answers, answer)
	if answer.IsCorrect {
		s.Score++
	}

	outcome := Outcome{Answer: answer, Question: q}
	if !s.Done() {
		return outcome, nil
	}

	end := c.timestamp()
	s.EndTime = &end
	rec := s.toRecord()

	c.last = &rec
	c.live = nil
	c.state = StateCompleted

	out := rec
	out.Answers = append([]record.Answer(nil), rec.Answers...)
	outcome.Record = &out
	return outcome, nil
}

// Reset discards the live session, answered or not, and returns to Idle.
func (c *Controller) Reset() {
	c.live = nil
	c.state = StateIdle
}

// timestamp returns now in UTC at millisecond precision, the resolution
// records are persisted with.
func (c *Controller) timestamp() time.Time {
	return c.now().UTC().Truncate(time.Millisecond)
}
