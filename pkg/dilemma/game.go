package dilemma

// Round records the simultaneous choices of one round, seen from the
// first player's side.
type Round struct {
	Own      Choice
	Opponent Choice
}

// Outcome classifies the round for the first player.
func (r Round) Outcome() Outcome {
	return OutcomeOf(r.Own, r.Opponent)
}

// Score returns the first player's payoff for the round.
func (r Round) Score() int {
	return r.Outcome().Payoff()
}

// MultipleRounds plays count rounds between a and b and returns them in
// play order from a's perspective. The strategies are taken by value, so
// prototypes handed in never accumulate state. Within a round both sides
// commit their choice before either observes the other's.
//
// Both strategies must be in their first-play state; passing one that
// has already played is a programming error and panics.
func MultipleRounds(a, b Strategy, count int) []Round {
	if !a.IsFirstPlay() || !b.IsFirstPlay() {
		panic("dilemma: MultipleRounds requires strategies in first-play state")
	}
	rounds := make([]Round, 0, count)
	for i := 0; i < count; i++ {
		ca := a.Choose()
		cb := b.Choose()
		a.Observe(cb)
		b.Observe(ca)
		rounds = append(rounds, Round{Own: ca, Opponent: cb})
	}
	return rounds
}
