package dilemma

// Outcome classifies one round from a single player's perspective.
type Outcome uint8

const (
	Saint  Outcome = iota // both cooperated
	Thief                 // both defected
	Jerk                  // defected against a cooperator
	Sucker                // cooperated with a defector
)

// Payoff returns the points a player earns for the outcome.
func (o Outcome) Payoff() int {
	switch o {
	case Saint:
		return 3
	case Thief:
		return 1
	case Jerk:
		return 5
	default:
		return 0
	}
}

func (o Outcome) String() string {
	switch o {
	case Saint:
		return "saint"
	case Thief:
		return "thief"
	case Jerk:
		return "jerk"
	default:
		return "sucker"
	}
}

// AllOutcomes returns the four outcomes in display order.
func AllOutcomes() []Outcome {
	return []Outcome{Saint, Thief, Jerk, Sucker}
}

// OutcomeOf classifies a round given our own choice and the opponent's.
func OutcomeOf(own, opp Choice) Outcome {
	switch {
	case own == Cooperate && opp == Cooperate:
		return Saint
	case own == Defect && opp == Defect:
		return Thief
	case own == Defect:
		return Jerk
	default:
		return Sucker
	}
}
