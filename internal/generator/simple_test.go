package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/sudoku-sat/internal/domain"
	"svw.info/sudoku-sat/internal/solver"
)

func TestGenerateAllDifficultiesUnder2s(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			seed := int64(12345)
			p, st, err := g.Generate(ctx, 3, seed, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			if st.Duration > 2*time.Second {
				t.Fatalf("generation too slow for %s: %v (>2s)", tc.name, st.Duration)
			}
			// basic sanity: count givens (should be at least a valid baseline)
			givens := countGivens(&p.Board)
			if givens < 17 || givens > 81 {
				t.Fatalf("invalid givens count for %s: %d", tc.name, givens)
			}
			// verify uniqueness
			ok, _, _ := s.Unique(ctx, &p.Board)
			if !ok {
				t.Fatalf("puzzle for %s is not unique", tc.name)
			}
		})
	}
}

func TestGenerateSmallBoard(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	ctx := context.Background()
	p, _, err := g.Generate(ctx, 2, 7, domain.Easy)
	if err != nil {
		t.Fatal(err)
	}
	if p.Board.N != 2 {
		t.Fatalf("board has block size %d, want 2", p.Board.N)
	}
	ok, _, _ := s.Unique(ctx, &p.Board)
	if !ok {
		t.Fatal("4x4 puzzle is not unique")
	}
}
