package solver

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudoku-sat/internal/domain"
	"svw.info/sudoku-sat/internal/encode"
	"svw.info/sudoku-sat/internal/ports"
	"svw.info/sudoku-sat/internal/sat"
)

// DPLLSolver solves boards by encoding them to CNF and running the DPLL
// engine. The search itself runs to completion; the context is consulted
// only before it starts.
type DPLLSolver struct {
	log      logrus.FieldLogger
	extended bool
}

// NewDPLLSolver returns a SAT-backed solver with extended coverage clauses
// enabled and a discard logger.
func NewDPLLSolver() *DPLLSolver {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &DPLLSolver{log: log, extended: true}
}

// WithLogger routes solve summaries to the given logger.
func (s *DPLLSolver) WithLogger(log logrus.FieldLogger) *DPLLSolver {
	s.log = log
	return s
}

func (s *DPLLSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}

	cnf, err := encode.Encode(b, encode.Options{Extended: s.extended})
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	engine := sat.NewSolver(cnf.NumVars())
	for _, c := range cnf.Clauses() {
		engine.Add(c)
	}
	ok := engine.Solve()

	es := engine.Stats()
	st := ports.Stats{
		Nodes:    es.Decisions + es.Propagations,
		Duration: time.Since(start),
	}
	fields := logrus.Fields{
		"side":         b.Side(),
		"vars":         cnf.NumVars(),
		"clauses":      cnf.NumClauses(),
		"decisions":    es.Decisions,
		"propagations": es.Propagations,
		"conflicts":    es.Conflicts,
		"dur":          st.Duration.Round(time.Microsecond),
	}
	if !ok {
		s.log.WithFields(fields).Info("search exhausted")
		return nil, st, domain.ErrNoSolution
	}

	out, err := encode.Decode(b, engine.Model())
	if err != nil {
		return nil, st, err
	}
	s.log.WithFields(fields).Debug("solved")
	return out, st, nil
}
