package quizsession

import (
	"time"

	"github.com/remaimber-it/quiz/internal/domain/question"
	"github.com/remaimber-it/quiz/internal/domain/record"
)

// Session is one quiz attempt. The controller owns the live instance;
// everything handed out by the controller is a copy.
type Session struct {
	ID          string
	Questions   []question.Question
	Answers     []record.Answer // index-aligned with Questions
	Score       int
	StartTime   time.Time
	EndTime     *time.Time
	MaxDuration *time.Duration // optional time limit enforced by the host
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return len(s.Answers) == len(s.Questions)
}

// Remaining returns how many questions are still unanswered.
func (s *Session) Remaining() int {
	return len(s.Questions) - len(s.Answers)
}

// Expired reports whether the configured time limit has elapsed at now.
// A session without a limit never expires.
func (s *Session) Expired(now time.Time) bool {
	if s.MaxDuration == nil {
		return false
	}
	return now.Sub(s.StartTime) > *s.MaxDuration
}

func (s *Session) clone() *Session {
	c := *s
	c.Questions = append([]question.Question(nil), s.Questions...)
	c.Answers = append([]record.Answer(nil), s.Answers...)
	if s.EndTime != nil {
		end := *s.EndTime
		c.EndTime = &end
	}
	return &c
}

// toRecord freezes a finished session. Duration is measured in whole
// milliseconds and never negative.
func (s *Session) toRecord() record.Record {
	duration := s.EndTime.Sub(s.StartTime).Milliseconds()
	if duration < 0 {
		duration = 0
	}
	return record.Record{
		ID:            s.ID,
		Date:          s.StartTime,
		QuestionCount: len(s.Questions),
		Score:         s.Score,
		Answers:       append([]record.Answer(nil), s.Answers...),
		DurationMs:    duration,
	}
}
