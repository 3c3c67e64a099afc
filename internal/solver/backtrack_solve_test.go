package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/sudoku-sat/internal/domain"
	"svw.info/sudoku-sat/internal/validator"
)

func TestBacktrackingSolveUnder1s(t *testing.T) {
	in := boardOf(3, sample)
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	// no zeros
	if !out.Full() {
		t.Fatalf("unsolved cells remain")
	}
	// valid by fast validator
	ok, conf, err := validator.New().Validate(ctx, out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestBacktrackingNoSolution(t *testing.T) {
	b, err := domain.NewBoardFromClues(2, map[domain.CellCoord]int{
		{Row: 1, Col: 1}: 1,
		{Row: 1, Col: 4}: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = NewBacktrackingSolver().Solve(context.Background(), b)
	if err == nil {
		t.Fatal("expected an error for a contradictory board")
	}
}

func TestBacktrackingUnique(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx := context.Background()

	unique, _, err := s.Unique(ctx, boardOf(3, sample))
	if err != nil {
		t.Fatal(err)
	}
	if !unique {
		t.Fatal("sample puzzle should have exactly one solution")
	}

	// An empty 4×4 board has many completions.
	unique, _, err = s.Unique(ctx, domain.NewBoard(2))
	if err != nil {
		t.Fatal(err)
	}
	if unique {
		t.Fatal("empty board should not be unique")
	}
}
