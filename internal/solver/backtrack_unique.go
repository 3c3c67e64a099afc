package solver

import (
	"context"
	"time"

	"svw.info/sudoku-sat/internal/domain"
	"svw.info/sudoku-sat/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Clone()
	side := b.Side()
	nodes := 0
	count := 0
	if !givensConsistent(grid) {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := findEmpty(grid)
		if !ok {
			count++
			return count >= 2
		}
		for v := 1; v <= side; v++ {
			nodes++
			if isValid(grid, r, c, v) {
				grid.Cells[r][c] = v
				if dfs() {
					return true
				}
				grid.Cells[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

var _ interface {
	ports.Solver
	ports.UniquenessChecker
} = (*BacktrackingSolver)(nil)
