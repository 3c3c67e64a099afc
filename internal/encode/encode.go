// Package encode translates Sudoku boards into CNF over sat.Lit and maps
// satisfying assignments back into boards.
//
// One variable exists per (row, column, value) triple, true meaning "this
// cell holds this value". The clause set is the classic direct encoding:
// every cell holds at least one value, no cell holds two, and no row,
// column, or block repeats a value.
package encode

import (
	"github.com/pkg/errors"

	"svw.info/sudoku-sat/internal/domain"
	"svw.info/sudoku-sat/internal/sat"
)

// Options tune the generated clause set.
type Options struct {
	// Extended adds redundant coverage clauses (each value appears at least
	// once in every row, column, and block). They do not change the solution
	// set but sharpen unit propagation on sparse boards.
	Extended bool
}

// CNF is an encoded board: the clause set plus the variable numbering needed
// to decode a model.
type CNF struct {
	side    int
	nVars   int
	clauses []sat.Clause
}

// NumVars returns the variable count, side³ for a side×side board.
func (c *CNF) NumVars() int { return c.nVars }

// Clauses returns the encoded clause set.
func (c *CNF) Clauses() []sat.Clause { return c.clauses }

// NumClauses returns the clause count.
func (c *CNF) NumClauses() int { return len(c.clauses) }

// cellVar numbers the proposition "cell (r,c) holds value v", all 0-indexed.
func cellVar(side, r, c, v int) sat.Var {
	return sat.Var(r*side*side + c*side + v)
}

// Encode produces the CNF for a board. Cell values outside [1, side] are
// rejected with ErrInvalidPuzzle before any clause is generated.
func Encode(b *domain.Board, opts Options) (*CNF, error) {
	if b == nil || b.N < 1 {
		return nil, errors.Wrap(domain.ErrInvalidPuzzle, "missing or degenerate board")
	}
	side := b.Side()
	if len(b.Cells) != side {
		return nil, errors.Wrapf(domain.ErrInvalidPuzzle, "board has %d rows, want %d", len(b.Cells), side)
	}
	for r, row := range b.Cells {
		if len(row) != side {
			return nil, errors.Wrapf(domain.ErrInvalidPuzzle, "row %d has %d cells, want %d", r+1, len(row), side)
		}
		for c, v := range row {
			if v < 0 || v > side {
				return nil, errors.Wrapf(domain.ErrInvalidPuzzle, "value %d at (%d,%d) out of range", v, r+1, c+1)
			}
		}
	}

	cnf := &CNF{side: side, nVars: side * side * side}
	cnf.cellClauses()
	cnf.cellUniqueness()
	cnf.rowUniqueness()
	cnf.colUniqueness()
	cnf.blockUniqueness(b.N)
	if opts.Extended {
		cnf.rowCoverage()
		cnf.colCoverage()
	}
	cnf.clueClauses(b)
	return cnf, nil
}

// cellClauses asserts at least one value per cell.
func (c *CNF) cellClauses() {
	for r := 0; r < c.side; r++ {
		for col := 0; col < c.side; col++ {
			clause := make(sat.Clause, c.side)
			for v := 0; v < c.side; v++ {
				clause[v] = cellVar(c.side, r, col, v).Pos()
			}
			c.clauses = append(c.clauses, clause)
		}
	}
}

// cellUniqueness forbids two values in one cell, pairwise.
func (c *CNF) cellUniqueness() {
	for r := 0; r < c.side; r++ {
		for col := 0; col < c.side; col++ {
			for v := 0; v < c.side-1; v++ {
				for w := v + 1; w < c.side; w++ {
					c.clauses = append(c.clauses, sat.Clause{
						cellVar(c.side, r, col, v).Neg(),
						cellVar(c.side, r, col, w).Neg(),
					})
				}
			}
		}
	}
}

// rowUniqueness forbids a value appearing twice in a row, pairwise over the
// row's cells.
func (c *CNF) rowUniqueness() {
	for r := 0; r < c.side; r++ {
		for v := 0; v < c.side; v++ {
			for a := 0; a < c.side-1; a++ {
				for b := a + 1; b < c.side; b++ {
					c.clauses = append(c.clauses, sat.Clause{
						cellVar(c.side, r, a, v).Neg(),
						cellVar(c.side, r, b, v).Neg(),
					})
				}
			}
		}
	}
}

// colUniqueness mirrors rowUniqueness over columns.
func (c *CNF) colUniqueness() {
	for col := 0; col < c.side; col++ {
		for v := 0; v < c.side; v++ {
			for a := 0; a < c.side-1; a++ {
				for b := a + 1; b < c.side; b++ {
					c.clauses = append(c.clauses, sat.Clause{
						cellVar(c.side, a, col, v).Neg(),
						cellVar(c.side, b, col, v).Neg(),
					})
				}
			}
		}
	}
}

// blockUniqueness forbids a value appearing twice within an n×n block,
// pairwise over each block's cells.
func (c *CNF) blockUniqueness(n int) {
	for br := 0; br < n; br++ {
		for bc := 0; bc < n; bc++ {
			cells := make([]int, 0, c.side)
			for dr := 0; dr < n; dr++ {
				for dc := 0; dc < n; dc++ {
					r := br*n + dr
					col := bc*n + dc
					cells = append(cells, r*c.side+col)
				}
			}
			for v := 0; v < c.side; v++ {
				for i := 0; i < len(cells)-1; i++ {
					for j := i + 1; j < len(cells); j++ {
						c.clauses = append(c.clauses, sat.Clause{
							cellVar(c.side, cells[i]/c.side, cells[i]%c.side, v).Neg(),
							cellVar(c.side, cells[j]/c.side, cells[j]%c.side, v).Neg(),
						})
					}
				}
			}
		}
	}
}

// rowCoverage asserts every value appears at least once per row.
func (c *CNF) rowCoverage() {
	for r := 0; r < c.side; r++ {
		for v := 0; v < c.side; v++ {
			clause := make(sat.Clause, c.side)
			for col := 0; col < c.side; col++ {
				clause[col] = cellVar(c.side, r, col, v).Pos()
			}
			c.clauses = append(c.clauses, clause)
		}
	}
}

// colCoverage asserts every value appears at least once per column.
func (c *CNF) colCoverage() {
	for col := 0; col < c.side; col++ {
		for v := 0; v < c.side; v++ {
			clause := make(sat.Clause, c.side)
			for r := 0; r < c.side; r++ {
				clause[r] = cellVar(c.side, r, col, v).Pos()
			}
			c.clauses = append(c.clauses, clause)
		}
	}
}

// clueClauses pins every given: a positive unit for the clue value and
// negative units for every other value at that cell.
func (c *CNF) clueClauses(b *domain.Board) {
	for r, row := range b.Cells {
		for col, val := range row {
			if val == 0 {
				continue
			}
			for v := 0; v < c.side; v++ {
				if v == val-1 {
					c.clauses = append(c.clauses, sat.Clause{cellVar(c.side, r, col, v).Pos()})
					continue
				}
				c.clauses = append(c.clauses, sat.Clause{cellVar(c.side, r, col, v).Neg()})
			}
		}
	}
}

// Decode maps a satisfying assignment back onto a fully solved board. Each
// cell must have exactly one true value variable; anything else means the
// encoding or the search is defective and yields ErrInconsistent.
func Decode(b *domain.Board, model []bool) (*domain.Board, error) {
	side := b.Side()
	if len(model) != side*side*side {
		return nil, errors.Wrapf(domain.ErrInconsistent, "model has %d variables, want %d", len(model), side*side*side)
	}
	out := b.Clone()
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			found := 0
			for v := 0; v < side; v++ {
				if model[cellVar(side, r, c, v)] {
					found++
					out.Cells[r][c] = v + 1
				}
			}
			if found != 1 {
				return nil, errors.Wrapf(domain.ErrInconsistent, "cell (%d,%d) has %d assigned values", r+1, c+1, found)
			}
		}
	}
	return out, nil
}
