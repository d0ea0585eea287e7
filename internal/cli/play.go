package cli

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/remaimber-it/quiz/internal/domain/question"
	quizsession "github.com/remaimber-it/quiz/internal/domain/quiz_session"
	"github.com/remaimber-it/quiz/internal/domain/record"
)

var errQuit = errors.New("quit")

// Play runs one interactive session. Typing q (or closing the input)
// abandons it without recording anything.
func (h *Handler) Play(ctx context.Context, config quizsession.SessionConfig) error {
	session, err := h.svc.Start(config)
	if err != nil {
		return err
	}

	h.printf("Starting quiz: %d of %d questions from %s",
		len(session.Questions), len(h.svc.Pool()), h.svc.PoolSource())
	if session.MaxDuration != nil {
		h.printf(", time limit %s", formatDuration(*session.MaxDuration))
	}
	h.printf("\n")

	for {
		q, position, ok := h.svc.Current()
		if !ok {
			return nil
		}

		h.printQuestion(q, position, len(session.Questions))

		choice, err := h.readChoice()
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			h.svc.Abandon()
			h.printf("\nQuiz abandoned. Nothing was recorded.\n")
			return nil
		}
		if err != nil {
			h.svc.Abandon()
			return err
		}

		if live := h.svc.Session(); live != nil && live.Expired(h.now()) {
			h.svc.Abandon()
			h.printf("\nTime is up with %d of %d questions unanswered. Quiz abandoned. Nothing was recorded.\n",
				live.Remaining(), len(live.Questions))
			return nil
		}

		outcome, err := h.svc.Answer(ctx, choice)
		if err != nil && outcome.Record == nil {
			return err
		}

		if outcome.Answer.IsCorrect {
			h.printf("Correct!\n\n")
		} else {
			h.printf("Wrong. The answer was: %s\n\n", outcome.Question.CorrectChoice())
		}

		if outcome.Record != nil {
			h.printResult(session.Questions, *outcome.Record)
			if err != nil {
				h.printf("\nWarning: the result could not be saved: %v\n", err)
			}
			return err
		}
	}
}

func (h *Handler) printQuestion(q question.Question, position, total int) {
	h.printf("\nQuestion %d/%d\n%s\n", position+1, total, q.Prompt)
	for i, c := range q.Choices {
		h.printf("  %d) %s\n", i+1, c)
	}
}

// readChoice reads until it gets 1-4 (returned 0-based) or q.
func (h *Handler) readChoice() (int, error) {
	for {
		h.printf("Your answer (1-%d, q to quit): ", question.NumChoices)
		line, err := h.readLine()
		if err != nil {
			return 0, err
		}

		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			return 0, errQuit
		}

		n, err := strconv.Atoi(line)
		if err == nil && question.ValidChoice(n-1) {
			return n - 1, nil
		}
		h.printf("Please enter a number from 1 to %d.\n", question.NumChoices)
	}
}

// printResult shows the score and every answer next to the right one.
func (h *Handler) printResult(questions []question.Question, rec record.Record) {
	h.printf("Result: %d of %d correct (%d%%) in %s\n\n",
		rec.Score, rec.QuestionCount, rec.Percentage(), formatDuration(rec.Duration()))

	for i, a := range rec.Answers {
		q := questions[a.QuestionIndex]
		verdict := "correct"
		if !a.IsCorrect {
			verdict = "incorrect"
		}
		h.printf("Q%d: %s [%s]\n", i+1, q.Prompt, verdict)
		h.printf("    your answer: %s\n", q.Choices[a.SelectedChoice])
		h.printf("    correct:     %s\n", q.Choices[a.CorrectChoice])
	}
}
