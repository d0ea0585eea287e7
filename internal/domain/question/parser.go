package question

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// BlockSize is the number of non-blank lines that encode one question:
// prompt, four choices, 1-indexed correct digit.
const BlockSize = 2 + NumChoices

// ErrNoQuestions is wrapped by ParseError when the input holds no complete block.
var ErrNoQuestions = errors.New("no valid questions found")

// ParseError is returned when a question file is rejected. The whole file
// is rejected; no partial pool is ever returned alongside it.
type ParseError struct {
	Block int    // 1-based block number, 0 when not tied to a block
	Line  int    // 1-based line in the source text, 0 when not tied to a line
	Value string // offending text
	Err   error
}

func (e *ParseError) Error() string {
	if e.Block == 0 {
		return fmt.Sprintf("parse questions: %v", e.Err)
	}
	return fmt.Sprintf("parse questions: block %d (line %d): %v", e.Block, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type sourceLine struct {
	text   string
	number int
}

// Parse converts the content of a question file into a pool.
//
// Blank lines are dropped before grouping, so any number of them may
// separate blocks. A trailing group shorter than BlockSize is ignored.
func Parse(content string) ([]Question, error) {
	content = strings.TrimPrefix(content, "\ufeff")

	var lines []sourceLine
	for i, raw := range strings.Split(content, "\n") {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		lines = append(lines, sourceLine{text: text, number: i + 1})
	}

	var questions []Question
	for start := 0; start+BlockSize <= len(lines); start += BlockSize {
		block := lines[start : start+BlockSize]
		q, err := parseBlock(block)
		if err != nil {
			return nil, &ParseError{
				Block: start/BlockSize + 1,
				Line:  block[BlockSize-1].number,
				Value: block[BlockSize-1].text,
				Err:   err,
			}
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, &ParseError{Err: ErrNoQuestions}
	}
	return questions, nil
}

// parseBlock builds a question from exactly BlockSize trimmed, non-blank lines.
// The last line must be a single digit from 1 to NumChoices.
func parseBlock(block []sourceLine) (Question, error) {
	digit := block[BlockSize-1].text
	if len(digit) != 1 || digit[0] < '1' || digit[0] > '0'+NumChoices {
		return Question{}, &InvalidInputError{Field: "correct-answer index", Value: digit}
	}

	var choices [NumChoices]string
	for i := range choices {
		choices[i] = block[1+i].text
	}
	return New(block[0].text, choices, int(digit[0]-'1'))
}

// ParseReader reads r to the end and parses it.
func ParseReader(r io.Reader) ([]Question, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	return Parse(string(data))
}

// ParseFile parses the question file at path.
func ParseFile(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question file: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}
