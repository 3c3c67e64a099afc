package sat

// Var is a propositional variable, numbered from 0.
type Var int

// Lit is a literal: a variable together with a polarity. The variable sits
// in the high bits and the polarity in the lowest bit, odd values being
// negations (the MiniSat-family packing).
type Lit int

// Pos returns the positive literal of v.
func (v Var) Pos() Lit { return Lit(v << 1) }

// Neg returns the negated literal of v.
func (v Var) Neg() Lit { return Lit(v<<1 | 1) }

// Var returns the literal's variable.
func (m Lit) Var() Var { return Var(m >> 1) }

// Pos reports whether the literal is positive.
func (m Lit) Pos() bool { return m&1 == 0 }

// Not returns the literal with polarity flipped.
func (m Lit) Not() Lit { return m ^ 1 }

// Clause is a disjunction of literals. It is satisfied when at least one
// literal is true and falsified when all are false.
type Clause []Lit

// value is the truth state of a variable during search.
type value int8

const (
	vUndef value = iota
	vTrue
	vFalse
)

// valueOf maps a boolean onto the truth states.
func valueOf(b bool) value {
	if b {
		return vTrue
	}
	return vFalse
}
