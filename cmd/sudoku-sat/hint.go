package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-sat/internal/domain"
	"svw.info/sudoku-sat/internal/infrastructure/storage"
)

func newHintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hint <puzzle-file>",
		Short: "Suggest the next logical placement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := storage.ReadBoardFile(args[0])
			if err != nil {
				return err
			}
			h, ok, err := a.service().Hint(cmd.Context(), b, domain.StrategySingles)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no hint available at this strategy tier")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "(%d,%d): %s\n", h.Cells[0].Row, h.Cells[0].Col, h.Message)
			return nil
		},
	}
}
