package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-sat/internal/domain"
)

func TestHintNakedSingle(t *testing.T) {
	// row 1 holds 1,2,3 so (1,4) can only be 4
	b, err := domain.NewBoardFromClues(2, map[domain.CellCoord]int{
		{Row: 1, Col: 1}: 1,
		{Row: 1, Col: 2}: 2,
		{Row: 1, Col: 3}: 3,
	})
	require.NoError(t, err)

	h, ok, err := NewSingles().Hint(context.Background(), b, domain.StrategySingles)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 1, Col: 4}}, h.Cells)
	assert.Equal(t, domain.StrategySingles, h.Strategy)
	assert.Contains(t, h.Message, "4")
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	// every cell has the full candidate set
	_, ok, err := NewSingles().Hint(context.Background(), domain.NewBoard(2), domain.StrategyAdvanced)
	require.NoError(t, err)
	assert.False(t, ok)
}
