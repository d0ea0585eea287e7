package cli

import (
	"context"
	"fmt"

	"github.com/remaimber-it/quiz/internal/domain/question"
	"github.com/remaimber-it/quiz/internal/domain/record"
	"github.com/remaimber-it/quiz/internal/worker"
)

const dateLayout = "2006-01-02 15:04:05"

// History lists every record, most recent first.
func (h *Handler) History(ctx context.Context) error {
	records, err := h.svc.History(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		h.printf("No records yet.\n")
		return nil
	}

	for _, r := range record.NewestFirst(records) {
		h.printf("%s  %d of %d correct (%d%%)  %s\n",
			r.Date.Local().Format(dateLayout),
			r.Score, r.QuestionCount, r.Percentage(),
			formatDuration(r.Duration()),
		)
	}
	return nil
}

// Stats prints the summary over the whole history.
func (h *Handler) Stats(ctx context.Context) error {
	stats, err := h.svc.Summary(ctx)
	if err != nil {
		return err
	}

	h.printf("Questions answered: %d\n", stats.TotalQuestions)
	h.printf("Accuracy:           %d%%\n", stats.AccuracyRate)
	h.printf("Sessions:           %d\n", stats.SessionCount)
	return nil
}

// Clear deletes all records. Unless confirmed is set the user is asked first.
func (h *Handler) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		ok, err := h.confirm("Delete all records? This cannot be undone.")
		if err != nil {
			return err
		}
		if !ok {
			h.printf("Cancelled.\n")
			return nil
		}
	}

	if err := h.svc.Clear(ctx); err != nil {
		return err
	}
	h.printf("All records deleted.\n")
	return nil
}

// checkWorkers bounds how many question files are parsed at once.
const checkWorkers = 4

type checkResult struct {
	count int
	err   error
}

// Check validates question files without loading them. Every file is
// reported; the returned error says how many were invalid.
func (h *Handler) Check(paths ...string) error {
	jobs := make(map[string]worker.Job[checkResult], len(paths))
	for _, path := range paths {
		jobs[path] = func() checkResult {
			questions, err := question.ParseFile(path)
			return checkResult{count: len(questions), err: err}
		}
	}
	results := worker.Run(checkWorkers, jobs)

	failed := 0
	for _, path := range paths {
		r := results[path]
		if r.err != nil {
			failed++
			h.printf("%s: %v\n", path, r.err)
			continue
		}
		h.printf("%s: %d questions OK\n", path, r.count)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d question files invalid", failed, len(paths))
	}
	return nil
}

// Sample prints an example question file.
func (h *Handler) Sample() error {
	h.printf("%s", question.SampleFile)
	return nil
}
