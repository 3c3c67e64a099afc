package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-sat/internal/domain"
)

func TestFSSaveLoadList(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	b, err := domain.NewBoardFromClues(2, map[domain.CellCoord]int{{Row: 1, Col: 1}: 1})
	require.NoError(t, err)
	p := &domain.Puzzle{ID: "p1", Seed: 42, Difficulty: domain.Hard, Board: *b, Name: "test"}
	require.NoError(t, fs.Save(ctx, p))

	got, err := fs.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.Hard, got.Difficulty)
	assert.Equal(t, int64(42), got.Seed)
	assert.Equal(t, b.Cells, got.Board.Cells)

	metas, err := fs.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "p1", metas[0].ID)
	assert.Equal(t, "test", metas[0].Name)
}

func TestFSLoadMissing(t *testing.T) {
	fs := NewFS(t.TempDir())
	_, err := fs.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFSSaveRequiresID(t *testing.T) {
	fs := NewFS(t.TempDir())
	err := fs.Save(context.Background(), &domain.Puzzle{})
	assert.Error(t, err)
}
