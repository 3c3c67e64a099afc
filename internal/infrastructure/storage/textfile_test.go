package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-sat/internal/domain"
)

func TestParseBoard(t *testing.T) {
	in := "2\n{(1,1): 1, (1,2): 2, (2,1): 3}\n"
	b, err := ParseBoard(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, b.N)
	assert.Equal(t, 1, b.Cells[0][0])
	assert.Equal(t, 2, b.Cells[0][1])
	assert.Equal(t, 3, b.Cells[1][0])
	assert.True(t, b.Fixed[0][0])
	assert.Equal(t, 0, b.Cells[3][3])
}

func TestParseBoardEmptyClues(t *testing.T) {
	b, err := ParseBoard(strings.NewReader("3\n{}\n"))
	require.NoError(t, err)
	assert.Equal(t, 9, b.Side())
	assert.Empty(t, b.Clues())
}

func TestParseBoardWhitespaceTolerant(t *testing.T) {
	in := "3\n{ ( 1 , 2 ) : 9 ,\n  (4,5): 1 }"
	b, err := ParseBoard(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 9, b.Cells[0][1])
	assert.Equal(t, 1, b.Cells[3][4])
}

func TestParseBoardErrors(t *testing.T) {
	for name, in := range map[string]string{
		"no size":          "{}\n",
		"missing braces":   "3\n(1,1): 5\n",
		"garbage entry":    "3\n{(1,1) = 5}\n",
		"value too large":  "3\n{(1,1): 10}\n",
		"row out of range": "3\n{(0,1): 5}\n",
		"col out of range": "2\n{(1,5): 1}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBoard(strings.NewReader(in))
			assert.ErrorIs(t, err, domain.ErrInvalidPuzzle)
		})
	}
}

func TestParseBoardDuplicateCell(t *testing.T) {
	_, err := ParseBoard(strings.NewReader("3\n{(1,1): 5, (1,1): 6}\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidPuzzle)

	// the same value twice is redundant, not contradictory
	b, err := ParseBoard(strings.NewReader("3\n{(1,1): 5, (1,1): 5}\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, b.Cells[0][0])
}

func TestFormatBoardRoundTrip(t *testing.T) {
	b, err := domain.NewBoardFromClues(2, map[domain.CellCoord]int{
		{Row: 1, Col: 1}: 1,
		{Row: 2, Col: 3}: 4,
		{Row: 4, Col: 4}: 2,
	})
	require.NoError(t, err)

	out := FormatBoard(b)
	assert.Equal(t, "2\n{(1,1): 1, (2,3): 4, (4,4): 2}\n", out)

	back, err := ParseBoard(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, b.Cells, back.Cells)
}
