package solver

import "svw.info/sudoku-sat/internal/domain"

// BacktrackingSolver is a straightforward recursive solver over cells. It
// also provides the Unique check the generator needs, which the SAT engine
// does not offer.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func isValid(b *domain.Board, r, c, v int) bool {
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

// givensConsistent reports whether the pre-filled cells already respect the
// row/column/block rules. The DFS only validates cells it places itself, so
// contradictory givens must be rejected up front. Mutates and restores b.
func givensConsistent(b *domain.Board) bool {
	for r := range b.Cells {
		for c, v := range b.Cells[r] {
			if v == 0 {
				continue
			}
			b.Cells[r][c] = 0
			ok := isValid(b, r, c, v)
			b.Cells[r][c] = v
			if !ok {
				return false
			}
		}
	}
	return true
}

func findEmpty(b *domain.Board) (int, int, bool) {
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
