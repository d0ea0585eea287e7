// internal/cli/handler.go
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/remaimber-it/quiz/internal/service"
)

// Handler holds everything the terminal commands need. Instead of reading
// os.Stdin and writing os.Stdout directly, every command goes through the
// reader and writer given here.
type Handler struct {
	svc    *service.QuizService
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
	now    func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock replaces time.Now for time-limit checks.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(svc *service.QuizService, in io.Reader, out io.Writer, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc:    svc,
		logger: logger,
		in:     bufio.NewScanner(in),
		out:    out,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// printf writes to the output. Write errors on a terminal are not actionable.
func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}

// readLine returns the next trimmed input line or io.EOF.
func (h *Handler) readLine() (string, error) {
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(h.in.Text()), nil
}

// confirm asks a yes/no question; anything but y/yes is a no.
func (h *Handler) confirm(prompt string) (bool, error) {
	h.printf("%s [y/N]: ", prompt)
	line, err := h.readLine()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// formatDuration renders d rounded to whole seconds, e.g. "1m05s".
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d / time.Minute)
	s := int((d % time.Minute) / time.Second)
	if m == 0 {
		return fmt.Sprintf("%ds", s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
