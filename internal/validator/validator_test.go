package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-sat/internal/domain"
)

func TestValidatePartialBoardOK(t *testing.T) {
	b, err := domain.NewBoardFromClues(2, map[domain.CellCoord]int{
		{Row: 1, Col: 1}: 1,
		{Row: 1, Col: 2}: 2,
		{Row: 2, Col: 3}: 1,
	})
	require.NoError(t, err)

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateRowConflict(t *testing.T) {
	b, err := domain.NewBoardFromClues(2, map[domain.CellCoord]int{
		{Row: 1, Col: 1}: 3,
		{Row: 1, Col: 4}: 3,
	})
	require.NoError(t, err)

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	// the later cell in scan order is reported, with 1-indexed coordinates
	assert.Contains(t, conflicts, domain.CellCoord{Row: 1, Col: 4})
}

func TestValidateBlockConflict(t *testing.T) {
	// same block, different row and column: only the block scan catches it
	b, err := domain.NewBoardFromClues(3, map[domain.CellCoord]int{
		{Row: 1, Col: 1}: 5,
		{Row: 2, Col: 2}: 5,
	})
	require.NoError(t, err)

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 2, Col: 2}}, conflicts)
}

func TestValidateEmptyBoard(t *testing.T) {
	ok, conflicts, err := New().Validate(context.Background(), domain.NewBoard(3))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}
