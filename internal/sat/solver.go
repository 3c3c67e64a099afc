package sat

// Solver is a plain DPLL solver: unit propagation to a fixed point, a
// deterministic decision rule, and chronological backtracking. No clause
// learning. A Solver is single-use: add clauses, call Solve, read the model.
//
// Clauses are indexed by occurrence lists so that the effect of a single
// assignment is computed from the clauses mentioning that variable rather
// than by re-scanning the whole clause set. Per-clause counters of true and
// false literals keep the unit, conflict, and satisfied predicates current
// under the partial assignment.
type Solver struct {
	nVars   int
	clauses []Clause
	occs    [][]int32 // literal -> indexes of clauses containing it

	assigns []value // per variable
	trail   []Lit   // assignment order, undone strictly LIFO

	trueCnt  []int32 // per clause: literals currently true
	falseCnt []int32 // per clause: literals currently false
	nSat     int     // clauses with at least one true literal
	units    []int32 // clauses pending unit propagation
	conflict bool

	stats Stats
}

// Stats counts search effort.
type Stats struct {
	Decisions    int
	Propagations int
	Conflicts    int
}

// frame is one decision point on the explicit search stack.
type frame struct {
	decision Lit // literal assigned at this decision, true branch first
	mark     int // trail length before the decision
	flipped  bool
}

// NewSolver returns a solver over nVars variables and no clauses.
func NewSolver(nVars int) *Solver {
	return &Solver{
		nVars:   nVars,
		occs:    make([][]int32, 2*nVars),
		assigns: make([]value, nVars),
	}
}

// Add appends a clause. All literals must refer to variables below the
// solver's variable count.
func (s *Solver) Add(c Clause) {
	ci := int32(len(s.clauses))
	s.clauses = append(s.clauses, c)
	s.trueCnt = append(s.trueCnt, 0)
	s.falseCnt = append(s.falseCnt, 0)
	for _, m := range c {
		s.occs[m] = append(s.occs[m], ci)
	}
	switch len(c) {
	case 0:
		s.conflict = true
	case 1:
		s.units = append(s.units, ci)
	}
}

// Stats returns the effort counters accumulated by Solve.
func (s *Solver) Stats() Stats { return s.stats }

// Model returns the satisfying assignment found by Solve, one boolean per
// variable. Variables left unassigned by an early satisfied outcome default
// to false.
func (s *Solver) Model() []bool {
	model := make([]bool, s.nVars)
	for v := range s.assigns {
		model[v] = s.assigns[v] == vTrue
	}
	return model
}

// Solve searches for a satisfying assignment and reports whether one was
// found. The decision rule is the lowest-numbered unassigned variable, true
// polarity first; with a fixed clause set the search is fully deterministic.
func (s *Solver) Solve() bool {
	if s.conflict {
		return false
	}
	var stack []frame
	for {
		s.propagate()
		if s.conflict {
			// Undo down the decision stack until a branch remains untried.
			// Exhausting the root decision means the formula is unsat.
			flipped := false
			for len(stack) > 0 {
				f := &stack[len(stack)-1]
				s.cancelUntil(f.mark)
				if !f.flipped {
					f.flipped = true
					s.assign(f.decision.Not())
					flipped = true
					break
				}
				stack = stack[:len(stack)-1]
			}
			if !flipped {
				return false
			}
			continue
		}
		if s.nSat == len(s.clauses) {
			return true
		}
		v, ok := s.pickVar()
		if !ok {
			// Fully assigned, conflict-free, yet some clause unsatisfied:
			// impossible for nonempty clauses.
			return false
		}
		m := v.Pos()
		stack = append(stack, frame{decision: m, mark: len(s.trail)})
		s.stats.Decisions++
		s.assign(m)
	}
}

// pickVar selects the lowest-numbered unassigned variable.
func (s *Solver) pickVar() (Var, bool) {
	for v := 0; v < s.nVars; v++ {
		if s.assigns[v] == vUndef {
			return Var(v), true
		}
	}
	return 0, false
}

// propagate drains the unit queue, assigning each unit clause's sole
// unassigned literal. Newly forced literals can make further clauses unit;
// the loop runs until the queue is empty or a clause is falsified.
func (s *Solver) propagate() {
	for len(s.units) > 0 {
		if s.conflict {
			break
		}
		ci := s.units[len(s.units)-1]
		s.units = s.units[:len(s.units)-1]
		if s.trueCnt[ci] > 0 {
			continue // satisfied in the meantime
		}
		c := s.clauses[ci]
		if int(s.falseCnt[ci]) != len(c)-1 {
			continue // no longer unit; a falsifying assign flags the conflict
		}
		for _, m := range c {
			if s.assigns[m.Var()] == vUndef {
				s.assign(m)
				s.stats.Propagations++
				break
			}
		}
	}
	if s.conflict {
		s.units = s.units[:0]
	}
}

// assign makes literal m true, updating the counters of every clause that
// mentions its variable and enqueueing clauses that became unit.
func (s *Solver) assign(m Lit) {
	v := m.Var()
	if s.assigns[v] != vUndef {
		if s.litValue(m) == vFalse {
			s.conflict = true
			s.stats.Conflicts++
		}
		return
	}
	s.assigns[v] = valueOf(m.Pos())
	s.trail = append(s.trail, m)
	for _, ci := range s.occs[m] {
		if s.trueCnt[ci] == 0 {
			s.nSat++
		}
		s.trueCnt[ci]++
	}
	for _, ci := range s.occs[m.Not()] {
		s.falseCnt[ci]++
		if s.trueCnt[ci] > 0 {
			continue
		}
		switch len(s.clauses[ci]) - int(s.falseCnt[ci]) {
		case 0:
			s.conflict = true
			s.stats.Conflicts++
		case 1:
			s.units = append(s.units, ci)
		}
	}
}

// cancelUntil undoes trail entries down to the given mark, newest first, and
// clears any pending propagation and the conflict flag.
func (s *Solver) cancelUntil(mark int) {
	for len(s.trail) > mark {
		m := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		s.assigns[m.Var()] = vUndef
		for _, ci := range s.occs[m] {
			s.trueCnt[ci]--
			if s.trueCnt[ci] == 0 {
				s.nSat--
			}
		}
		for _, ci := range s.occs[m.Not()] {
			s.falseCnt[ci]--
		}
	}
	s.units = s.units[:0]
	s.conflict = false
}

// litValue evaluates a literal under the current assignment.
func (s *Solver) litValue(m Lit) value {
	switch s.assigns[m.Var()] {
	case vUndef:
		return vUndef
	case vTrue:
		if m.Pos() {
			return vTrue
		}
		return vFalse
	default:
		if m.Pos() {
			return vFalse
		}
		return vTrue
	}
}
