package domain

// Difficulty grades generated puzzles by how many givens remain.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// String returns the lowercase name used in flags and storage paths.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// StrategyTier caps the logic a hinter may apply.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // sole candidates
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing, claiming, triples
)
