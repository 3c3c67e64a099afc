package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-sat/internal/domain"
	"svw.info/sudoku-sat/internal/ports"
)

// targetGivens scales the classic 9×9 clue counts (40/34/28/24 of 81 cells)
// to the board's cell count.
func targetGivens(side int, d domain.Difficulty) int {
	cells := side * side
	var pct int
	switch d {
	case domain.Easy:
		pct = 49
	case domain.Medium:
		pct = 42
	case domain.Hard:
		pct = 35
	default:
		pct = 30 // Expert
	}
	return cells * pct / 100
}

// Generate creates an n-block puzzle with a unique solution using seed and
// target difficulty.
func (g *UniqueGenerator) Generate(ctx context.Context, n int, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	side := n * n
	// 1) full random solution
	full := domain.NewBoard(n)
	if !fillRandom(ctx, rng, full) {
		return nil, ports.Stats{}, context.Canceled
	}
	// 2) carve out clues while preserving uniqueness
	puz := full.Clone()
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			puz.Fixed[r][c] = true
		}
	}
	positions := make([]int, side*side)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	target := targetGivens(side, diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0

	for _, pos := range positions {
		if time.Now().After(deadline) {
			break
		}
		// stop if target reached
		if countGivens(puz) <= target {
			break
		}
		r, c := pos/side, pos%side
		if puz.Cells[r][c] == 0 {
			continue
		}
		old := puz.Cells[r][c]
		puz.Cells[r][c] = 0
		puz.Fixed[r][c] = false
		unique, st, _ := g.Checker.Unique(ctx, puz)
		nodes += st.Nodes
		if !unique {
			// revert
			puz.Cells[r][c] = old
			puz.Fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		ID:         "",
		Seed:       seed,
		Difficulty: diff,
		Board:      *puz,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func countGivens(b *domain.Board) int {
	n := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// fillRandom solves an empty grid into a full valid solution by random ordering.
func fillRandom(ctx context.Context, rng *rand.Rand, b *domain.Board) bool {
	side := b.Side()
	nums := make([]int, side)
	for i := range nums {
		nums[i] = i + 1
	}
	var dfs func(int, int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == side {
			return true
		}
		nr, nc := r, c+1
		if nc == side {
			nr, nc = r+1, 0
		}
		// random order; snapshot per frame since deeper calls reshuffle
		rng.Shuffle(side, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		order := append([]int(nil), nums...)
		for _, v := range order {
			if allowed(b, r, c, v) {
				b.Cells[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				b.Cells[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed mirrors row/col/block checks locally for the generator.
func allowed(b *domain.Board, r, c, v int) bool {
	side := b.Side()
	for i := 0; i < side; i++ {
		if b.Cells[r][i] == v || b.Cells[i][c] == v {
			return false
		}
	}
	br, bc := (r/b.N)*b.N, (c/b.N)*b.N
	for dr := 0; dr < b.N; dr++ {
		for dc := 0; dc < b.N; dc++ {
			if b.Cells[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
