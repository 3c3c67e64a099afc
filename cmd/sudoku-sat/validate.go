package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"svw.info/sudoku-sat/internal/infrastructure/storage"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <puzzle-file>",
		Short: "Check a puzzle file for duplicate values in rows, columns, and blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := storage.ReadBoardFile(args[0])
			if err != nil {
				return err
			}
			ok, conflicts, err := a.service().Validate(cmd.Context(), b)
			if err != nil {
				return err
			}
			if !ok {
				return errors.Errorf("conflicting cells: %v", conflicts)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
