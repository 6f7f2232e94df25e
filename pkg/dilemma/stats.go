package dilemma

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyStats reports an average taken over stats with no rounds.
var ErrEmptyStats = errors.New("stats contain no rounds")

// Stats tallies outcomes over any number of rounds. The zero value is an
// empty tally ready to use. Stats is a value type and Add returns a new
// value, so partial tallies can be folded together in any order.
type Stats struct {
	counts [4]int // indexed by Outcome
}

// StatsOf tallies the outcomes of the given rounds.
func StatsOf(rounds []Round) Stats {
	var s Stats
	for _, r := range rounds {
		s.counts[r.Outcome()]++
	}
	return s
}

// Add returns the combined tally of s and t.
func (s Stats) Add(t Stats) Stats {
	for i, n := range t.counts {
		s.counts[i] += n
	}
	return s
}

// Count returns the total number of rounds tallied.
func (s Stats) Count() int {
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

// CountOf returns how many rounds ended in the given outcome.
func (s Stats) CountOf(o Outcome) int {
	return s.counts[o]
}

// Score returns the total payoff across all tallied rounds.
func (s Stats) Score() int {
	score := 0
	for _, o := range AllOutcomes() {
		score += s.counts[o] * o.Payoff()
	}
	return score
}

// Average returns the mean payoff per round, or ErrEmptyStats if the
// tally is empty.
func (s Stats) Average() (float64, error) {
	n := s.Count()
	if n == 0 {
		return 0, ErrEmptyStats
	}
	return float64(s.Score()) / float64(n), nil
}

// NormalizedScore reweights the tally: every jerk round counts 1, every
// saint round counts cooperateWeight, every thief round counts
// defectWeight. Sucker rounds never contribute.
func (s Stats) NormalizedScore(defectWeight, cooperateWeight float64) float64 {
	return float64(s.counts[Jerk]) +
		cooperateWeight*float64(s.counts[Saint]) +
		defectWeight*float64(s.counts[Thief])
}

// Summary renders the tally as "<count>*<payoff>=<product> " per outcome
// in display order.
func (s Stats) Summary() string {
	var sb strings.Builder
	for _, o := range AllOutcomes() {
		n := s.counts[o]
		fmt.Fprintf(&sb, "%d*%d=%d ", n, o.Payoff(), n*o.Payoff())
	}
	return sb.String()
}
