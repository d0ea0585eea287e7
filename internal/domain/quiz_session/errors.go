package quizsession

import (
	"errors"
	"fmt"
)

// ErrEmptyPool is returned by Start when there are no questions to draw from.
var ErrEmptyPool = errors.New("no questions available to start a session")

// StateError is returned when an operation is not allowed in the
// controller's current state. The state is left unchanged.
type StateError struct {
	Op     string
	State  State
	Reason string // optional detail
}

func (e *StateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot %s while %s: %s", e.Op, e.State, e.Reason)
	}
	return fmt.Sprintf("cannot %s while %s", e.Op, e.State)
}
