package record

import (
	"encoding/json"
	"math"
	"sort"
	"time"
)

// Answer is one answered question inside a session.
type Answer struct {
	QuestionIndex  int  `json:"questionIndex"` // position in presentation order
	SelectedChoice int  `json:"selectedChoice"`
	CorrectChoice  int  `json:"correctChoice"`
	IsCorrect      bool `json:"isCorrect"`
}

// Record is the frozen summary of one completed session.
type Record struct {
	ID            string    `json:"id,omitempty"`
	Date          time.Time `json:"date"` // session start
	QuestionCount int       `json:"questionCount"`
	Score         int       `json:"score"`
	Answers       []Answer  `json:"answers"`
	DurationMs    int64     `json:"durationMs"`
}

// UnmarshalJSON also accepts the "questions" and "duration" keys written
// by the browser version of the quiz.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	aux := struct {
		*plain
		Questions *int   `json:"questions"`
		Duration  *int64 `json:"duration"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.QuestionCount == 0 && aux.Questions != nil {
		r.QuestionCount = *aux.Questions
	}
	if r.DurationMs == 0 && aux.Duration != nil {
		r.DurationMs = *aux.Duration
	}
	return nil
}

// Duration returns DurationMs as a time.Duration.
func (r Record) Duration() time.Duration {
	return time.Duration(r.DurationMs) * time.Millisecond
}

// Percentage returns the rounded share of correct answers (0-100).
func (r Record) Percentage() int {
	return percent(r.Score, r.QuestionCount)
}

// Append returns a new history with rec at the end. history is not modified.
func Append(history []Record, rec Record) []Record {
	out := make([]Record, len(history), len(history)+1)
	copy(out, history)
	return append(out, rec)
}

// NewestFirst returns a copy of records ordered by date, most recent first.
// Records with the same date come out in reverse insertion order.
func NewestFirst(records []Record) []Record {
	sorted := make([]Record, len(records))
	for i, r := range records {
		sorted[len(records)-1-i] = r
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}
