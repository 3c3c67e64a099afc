package domain

import "github.com/pkg/errors"

// Board holds a sized Sudoku grid and which cells are fixed givens. N is the
// block dimension, so the grid is N²×N² and values range over [1, N²];
// 0 marks an empty cell.
type Board struct {
	N     int      `json:"n"`
	Cells [][]int  `json:"cells"`
	Fixed [][]bool `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board, 1-indexed.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewBoard returns an empty board with block dimension n.
func NewBoard(n int) *Board {
	side := n * n
	b := &Board{N: n, Cells: make([][]int, side), Fixed: make([][]bool, side)}
	for r := 0; r < side; r++ {
		b.Cells[r] = make([]int, side)
		b.Fixed[r] = make([]bool, side)
	}
	return b
}

// NewBoardFromClues builds a board from a 1-indexed clue mapping.
// Coordinates or values outside [1, N²] are rejected with ErrInvalidPuzzle.
func NewBoardFromClues(n int, clues map[CellCoord]int) (*Board, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidPuzzle, "block dimension %d", n)
	}
	b := NewBoard(n)
	side := n * n
	for ref, v := range clues {
		if ref.Row < 1 || ref.Row > side || ref.Col < 1 || ref.Col > side {
			return nil, errors.Wrapf(ErrInvalidPuzzle, "clue at (%d,%d) outside %dx%d grid", ref.Row, ref.Col, side, side)
		}
		if v < 1 || v > side {
			return nil, errors.Wrapf(ErrInvalidPuzzle, "clue value %d at (%d,%d) out of range", v, ref.Row, ref.Col)
		}
		b.Cells[ref.Row-1][ref.Col-1] = v
		b.Fixed[ref.Row-1][ref.Col-1] = true
	}
	return b, nil
}

// Side returns the grid dimension N².
func (b *Board) Side() int { return b.N * b.N }

// Clues returns the non-empty cells as a 1-indexed clue mapping.
func (b *Board) Clues() map[CellCoord]int {
	out := make(map[CellCoord]int)
	for r, row := range b.Cells {
		for c, v := range row {
			if v != 0 {
				out[CellCoord{Row: r + 1, Col: c + 1}] = v
			}
		}
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := NewBoard(b.N)
	for r := range b.Cells {
		copy(out.Cells[r], b.Cells[r])
		copy(out.Fixed[r], b.Fixed[r])
	}
	return out
}

// Full reports whether every cell carries a value.
func (b *Board) Full() bool {
	for _, row := range b.Cells {
		for _, v := range row {
			if v == 0 {
				return false
			}
		}
	}
	return true
}

// Hint describes a strategy suggestion.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
