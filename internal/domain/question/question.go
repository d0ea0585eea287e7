package question

import (
	"errors"
	"fmt"
	"strings"
)

// NumChoices is the fixed number of choices every question offers.
const NumChoices = 4

// Question is a single multiple-choice item. It is a value type: copies
// share nothing, so a pool can be handed to many sessions safely.
type Question struct {
	Prompt       string             `json:"prompt"`
	Choices      [NumChoices]string `json:"choices"`
	CorrectIndex int                `json:"correctIndex"` // 0-based
}

// InvalidInputError reports an out-of-range choice or correct-answer index.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// New builds a Question, rejecting an empty prompt or choice and a
// correct index outside [0, NumChoices).
func New(prompt string, choices [NumChoices]string, correctIndex int) (Question, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Question{}, errors.New("question prompt cannot be empty")
	}
	for i, c := range choices {
		choices[i] = strings.TrimSpace(c)
		if choices[i] == "" {
			return Question{}, fmt.Errorf("choice %d cannot be empty", i+1)
		}
	}
	if !ValidChoice(correctIndex) {
		return Question{}, &InvalidInputError{Field: "correct-answer index", Value: fmt.Sprint(correctIndex)}
	}

	return Question{
		Prompt:       prompt,
		Choices:      choices,
		CorrectIndex: correctIndex,
	}, nil
}

// ValidChoice reports whether i addresses one of the choices.
func ValidChoice(i int) bool {
	return i >= 0 && i < NumChoices
}

// IsCorrect reports whether choice is the right answer.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.CorrectIndex
}

// CorrectChoice returns the text of the right answer.
func (q Question) CorrectChoice() string {
	return q.Choices[q.CorrectIndex]
}
