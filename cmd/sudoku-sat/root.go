package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"svw.info/sudoku-sat/internal/domain"
	"svw.info/sudoku-sat/internal/generator"
	"svw.info/sudoku-sat/internal/hint"
	"svw.info/sudoku-sat/internal/infrastructure/storage"
	"svw.info/sudoku-sat/internal/ports"
	"svw.info/sudoku-sat/internal/solver"
	"svw.info/sudoku-sat/internal/usecase"
	"svw.info/sudoku-sat/internal/validator"
)

type app struct {
	log      *logrus.Logger
	logLevel string
	engine   string
	dataDir  string
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}
	root := &cobra.Command{
		Use:           "sudoku-sat",
		Short:         "Solve, generate, and inspect Sudoku puzzles via a SAT encoding",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log.SetLevel(lvl)
			return nil
		},
	}
	// accept snake_case spellings of every flag
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warning", "trace|debug|info|warning|error")
	root.PersistentFlags().StringVar(&a.engine, "engine", "dpll", "solver engine: dpll|backtrack")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "./data", "directory for saved puzzles")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a), newHintCmd(a), newValidateCmd(a), newListCmd(a))
	return root
}

// service wires the selected engine into the usecase facade.
func (a *app) service() *usecase.Service {
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(a.engine)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewDPLLSolver().WithLogger(a.log)
	}
	checker := solver.NewBacktrackingSolver()
	return usecase.NewService(
		s,
		generator.NewUniqueGenerator(checker),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(a.dataDir),
	)
}

// printBoard renders the grid with block separators, in the style of the
// text puzzle tooling.
func printBoard(out func(string), b *domain.Board) {
	side := b.Side()
	width := len(fmt.Sprint(side))
	var sb strings.Builder
	for r := 0; r < side; r++ {
		sb.Reset()
		for c := 0; c < side; c++ {
			if b.Cells[r][c] == 0 {
				sb.WriteString(strings.Repeat(" ", width) + " ")
			} else {
				fmt.Fprintf(&sb, "%*d ", width, b.Cells[r][c])
			}
			if (c+1)%b.N == 0 && c+1 != side {
				sb.WriteString("| ")
			}
		}
		out(strings.TrimRight(sb.String(), " "))
		if (r+1)%b.N == 0 && r+1 != side {
			out(strings.Repeat("-", (width+1)*side+2*b.N-3))
		}
	}
}
