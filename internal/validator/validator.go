package validator

import (
	"context"

	"svw.info/sudoku-sat/internal/domain"
)

// FastValidator flags duplicate values in rows, columns, and blocks using
// one bitmask per unit. Empty cells are ignored, so it works on partial
// boards. Grid sides up to 63 fit the mask.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	side := b.Side()
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < side; r++ {
		var m uint64
		for c := 0; c < side; c++ {
			val := b.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := uint64(1) << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r + 1, Col: c + 1})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < side; c++ {
		var m uint64
		for r := 0; r < side; r++ {
			val := b.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := uint64(1) << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r + 1, Col: c + 1})
			}
			m |= bit
		}
	}
	// blocks
	for br := 0; br < b.N; br++ {
		for bc := 0; bc < b.N; bc++ {
			var m uint64
			for dr := 0; dr < b.N; dr++ {
				for dc := 0; dc < b.N; dc++ {
					r := br*b.N + dr
					c := bc*b.N + dc
					val := b.Cells[r][c]
					if val == 0 {
						continue
					}
					bit := uint64(1) << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r + 1, Col: c + 1})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
