package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-sat/internal/infrastructure/storage"
)

func newSolveCmd(a *app) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a puzzle file and print the completed grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := storage.ReadBoardFile(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			a.log.WithFields(map[string]interface{}{
				"file":   args[0],
				"side":   b.Side(),
				"clues":  len(b.Clues()),
				"engine": a.engine,
			}).Info("solving")

			out, st, err := a.service().Solve(ctx, b)
			if err != nil {
				return err
			}
			a.log.WithFields(map[string]interface{}{
				"nodes": st.Nodes,
				"dur":   st.Duration.Round(time.Millisecond),
			}).Info("solved")

			printBoard(func(line string) { fmt.Fprintln(cmd.OutOrStdout(), line) }, out)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the backtracking engine after this long (dpll runs to completion)")
	return cmd
}
