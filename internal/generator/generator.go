package generator

import "svw.info/sudoku-sat/internal/ports"

// UniqueGenerator creates puzzles with a unique solution using a provided
// uniqueness checker.
type UniqueGenerator struct {
	Checker ports.UniquenessChecker
}

// NewUniqueGenerator wires a generator that uses the given checker to keep
// carved puzzles unique.
func NewUniqueGenerator(c ports.UniquenessChecker) *UniqueGenerator {
	return &UniqueGenerator{Checker: c}
}

var _ ports.Generator = (*UniqueGenerator)(nil)
