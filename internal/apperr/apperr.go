// Package apperr defines the error-kind taxonomy shared across pperf's
// packages. Components never return these sentinels directly to a caller
// that only wants to print a message; they wrap them with fmt.Errorf so
// internal/cli can classify an error by identity (errors.Is) and map it to
// an exit code without string matching.
package apperr

import "errors"

var (
	// ErrFileUnavailable covers input files that cannot be opened or read.
	ErrFileUnavailable = errors.New("input file not found or unreadable")

	// ErrMalformedReport covers reports with no recognizable structure.
	ErrMalformedReport = errors.New("malformed report content")

	// ErrInvalidArguments covers argument-validity failures: bad flag
	// values, conflicting flags, hierarchy mode without targets.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrNoTargetMatches covers substring target selectors that matched
	// nothing.
	ErrNoTargetMatches = errors.New("no matches for given targets")

	// ErrAmbiguousTarget covers exact-signature selectors matching more
	// than one distinct raw symbol.
	ErrAmbiguousTarget = errors.New("ambiguous target signature")

	// ErrUnmatchedTarget covers exact-signature selectors matching zero
	// entries, or an empty target file.
	ErrUnmatchedTarget = errors.New("unmatched target signature")

	// ErrInternalInvariant covers states the traversal logic believes are
	// impossible. Surfacing it is a diagnostic, not a recoverable case.
	ErrInternalInvariant = errors.New("internal invariant violated")
)
