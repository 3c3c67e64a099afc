package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-sat/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first found naked single if max tier allows it.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	side := b.Side()
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if b.Cells[r][c] != 0 {
				continue
			}
			v, ok := soleCandidate(b, r, c)
			if ok {
				msg := fmt.Sprintf("Single: only %d fits here", v)
				return domain.Hint{
					Message:  msg,
					Cells:    []domain.CellCoord{{Row: r + 1, Col: c + 1}},
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(b *domain.Board, r, c int) (int, bool) {
	last := 0
	count := 0
	for v := 1; v <= b.Side(); v++ {
		if allowed(b, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}

func allowed(b *domain.Board, r, c, v int) bool {
	// row & col
	side := b.Side()
	for i := 0; i < side; i++ {
		if b.Cells[r][i] == v || b.Cells[i][c] == v {
			return false
		}
	}
	// block
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
