package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"svw.info/sudoku-sat/internal/domain"
	"svw.info/sudoku-sat/internal/infrastructure/storage"
)

func parseDifficulty(s string) (domain.Difficulty, error) {
	switch s {
	case "easy":
		return domain.Easy, nil
	case "medium":
		return domain.Medium, nil
	case "hard":
		return domain.Hard, nil
	case "expert":
		return domain.Expert, nil
	}
	return 0, errors.Errorf("unknown difficulty %q", s)
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		n          int
		seed       int64
		difficulty string
		save       string
		asText     string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := parseDifficulty(difficulty)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			p, st, err := a.service().Generate(cmd.Context(), n, seed, diff)
			if err != nil {
				return err
			}
			a.log.WithFields(map[string]interface{}{
				"seed":  seed,
				"nodes": st.Nodes,
				"dur":   st.Duration.Round(time.Millisecond),
			}).Info("generated")

			printBoard(func(line string) { fmt.Fprintln(cmd.OutOrStdout(), line) }, &p.Board)

			if save != "" {
				p.ID = save
				if err := a.service().Save(cmd.Context(), p); err != nil {
					return err
				}
			}
			if asText != "" {
				if err := storage.WriteBoardFile(asText, &p.Board); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 3, "block dimension (3 gives a 9x9 grid)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy|medium|hard|expert")
	cmd.Flags().StringVar(&save, "save", "", "persist the puzzle as JSON under this ID")
	cmd.Flags().StringVar(&asText, "out", "", "also write the puzzle as a text puzzle file")
	return cmd
}
