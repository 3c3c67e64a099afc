package domain

import "errors"

// Solving outcomes that callers are expected to branch on. Sites wrap these
// with context via github.com/pkg/errors; match with errors.Is.
var (
	// ErrInvalidPuzzle marks malformed input: clue coordinates or values out
	// of range, or two different values given for the same cell. Detected
	// before any search starts.
	ErrInvalidPuzzle = errors.New("invalid puzzle")

	// ErrNoSolution is returned once the search space is exhausted without a
	// satisfying assignment. A legitimate terminal outcome, not a crash.
	ErrNoSolution = errors.New("no solution")

	// ErrInconsistent marks a decoding failure: a cell with zero or several
	// assigned values in a model reported as satisfying. Indicates a defect
	// in the encoding or the search, never user input.
	ErrInconsistent = errors.New("inconsistent model")
)
