package schedulers

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantum             = errors.New("invalid time quantum")
	ErrEmptyProcessSet            = errors.New("empty process set")
	ErrUnknownPolicy              = errors.New("unknown scheduling policy")
	ErrInternalInvariantViolation = errors.New("internal invariant violation")
)

// SimulationError is the single error a failed simulation reports. It wraps
// one of the sentinel errors above.
type SimulationError struct {
	Kind      error
	Algorithm PolicyID
	Detail    string
}

func (e *SimulationError) Error() string {
	msg := e.Kind.Error()
	if e.Algorithm != "" {
		msg = fmt.Sprintf("%s: %s", e.Algorithm, msg)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

func (e *SimulationError) Unwrap() error {
	return e.Kind
}

func newError(kind error, algorithm PolicyID, format string, args ...interface{}) *SimulationError {
	return &SimulationError{Kind: kind, Algorithm: algorithm, Detail: fmt.Sprintf(format, args...)}
}

func invariant(format string, args ...interface{}) *SimulationError {
	return newError(ErrInternalInvariantViolation, "", format, args...)
}
