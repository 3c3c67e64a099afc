package solver

import (
	"context"
	"time"

	"svw.info/sudoku-sat/internal/domain"
	"svw.info/sudoku-sat/internal/ports"
)

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Clone()
	side := b.Side()
	nodes := 0
	if !givensConsistent(grid) {
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrNoSolution
	}
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(grid)
		if !ok {
			return true
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
	if !dfs() {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, domain.ErrNoSolution
	}
	return grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
