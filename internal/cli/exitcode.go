package cli

import (
	"errors"

	"github.com/scarpart/pperf/internal/apperr"
)

// ExitError pairs an error with the process exit code it should produce.
// cmd/pperf/main.go type-asserts for it; any other error exits 1.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// classify maps a sentinel error from internal/apperr to its exit code via
// errors.Is, never string matching, per SPEC_FULL.md §7.
func classify(err error) *ExitError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrFileUnavailable):
		return &ExitError{Err: err, Code: 1}
	case errors.Is(err, apperr.ErrMalformedReport):
		return &ExitError{Err: err, Code: 2}
	case errors.Is(err, apperr.ErrInvalidArguments):
		return &ExitError{Err: err, Code: 3}
	case errors.Is(err, apperr.ErrNoTargetMatches):
		return &ExitError{Err: err, Code: 4}
	case errors.Is(err, apperr.ErrAmbiguousTarget):
		return &ExitError{Err: err, Code: 5}
	case errors.Is(err, apperr.ErrUnmatchedTarget):
		return &ExitError{Err: err, Code: 6}
	default:
		return &ExitError{Err: err, Code: 1}
	}
}
