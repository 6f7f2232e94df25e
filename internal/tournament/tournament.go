// Package tournament ranks prisoner's dilemma prototypes by round-robin
// play and evolves a population through repeated elimination.
package tournament

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/metaform3d/prisoners-dilemma/pkg/dilemma"
)

// DefaultRounds is the number of rounds played per pairing.
const DefaultRounds = 200

// Config adjusts how a tournament plays its pairings.
type Config struct {
	Rounds   int                   // rounds per pairing (default 200)
	Workers  int                   // parallel pairing rows (default 1)
	Progress func(done, total int) // called as pairing rows complete; may run on several goroutines
}

// Standing is one row of a ranked tournament's display data.
type Standing struct {
	Description string
	Signature   string
	Rank        float64
	Score       int
	Stats       dilemma.Stats
}

// Tournament plays every ordered pair of prototypes, self-pairs
// included, and normalizes the accumulated scores into ranks.
//
// A tournament starts unranked. Querying ranks, standings, or a trim
// before ComputeRanking is a programming error and panics.
type Tournament struct {
	prototypes []Prototype
	rounds     int
	workers    int
	progress   func(done, total int)

	ranked bool
	stats  []dilemma.Stats
	rank   []float64
}

// New creates an unranked tournament over the given prototypes. The
// pool must not be empty.
func New(prototypes []Prototype, cfg Config) *Tournament {
	if len(prototypes) == 0 {
		panic("tournament: empty prototype pool")
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = DefaultRounds
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Tournament{
		prototypes: append([]Prototype(nil), prototypes...),
		rounds:     cfg.Rounds,
		workers:    cfg.Workers,
		progress:   cfg.Progress,
	}
}

// Size returns the number of prototypes in the pool.
func (t *Tournament) Size() int {
	return len(t.prototypes)
}

// Prototypes returns the pool in its original order.
func (t *Tournament) Prototypes() []Prototype {
	return append([]Prototype(nil), t.prototypes...)
}

// ComputeRanking plays all ordered pairings and derives each
// prototype's rank. Every prototype meets every prototype, itself
// included, exactly once as the first player, and the first player's
// outcomes accumulate into its stats. Ranks are the raw scores min-max
// normalized into [0, 1]; when every score is equal the whole pool
// ranks 0.5.
func (t *Tournament) ComputeRanking() {
	n := len(t.prototypes)
	t.stats = make([]dilemma.Stats, n)

	// Row i only writes stats[i] and the fold within a row is
	// order-independent, so any worker count produces the same ranking.
	var wg sync.WaitGroup
	var finished int64
	jobs := make(chan int)
	for w := 0; w < t.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				t.stats[i] = t.playRow(i)
				if t.progress != nil {
					t.progress(int(atomic.AddInt64(&finished, 1)), n)
				}
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	scores := make([]int, n)
	for i, s := range t.stats {
		scores[i] = s.Score()
	}
	t.rank = normalize(scores)
	t.ranked = true
}

// playRow accumulates prototype i's stats as the first player against
// the whole pool.
func (t *Tournament) playRow(i int) dilemma.Stats {
	var acc dilemma.Stats
	me := dilemma.NewStrategy(t.prototypes[i].Genome)
	for _, opp := range t.prototypes {
		rounds := dilemma.MultipleRounds(me, dilemma.NewStrategy(opp.Genome), t.rounds)
		acc = acc.Add(dilemma.StatsOf(rounds))
	}
	return acc
}

// Standings returns the ranked pool sorted by raw score, best first.
// Equal scores keep their pool order.
func (t *Tournament) Standings() []Standing {
	t.mustBeRanked("Standings")
	rows := make([]Standing, len(t.prototypes))
	for i, p := range t.prototypes {
		rows[i] = Standing{
			Description: p.Description(),
			Signature:   p.Signature,
			Rank:        t.rank[i],
			Score:       t.stats[i].Score(),
			Stats:       t.stats[i],
		}
	}
	sort.SliceStable(rows, func(a, b int) bool { return rows[a].Score > rows[b].Score })
	return rows
}

// TopNormalized returns the description of the prototype whose
// reweighted tally is highest. Ties go to the earliest pool entry.
func (t *Tournament) TopNormalized(defectWeight, cooperateWeight float64) string {
	t.mustBeRanked("TopNormalized")
	scores := make([]float64, len(t.stats))
	for i, s := range t.stats {
		scores[i] = s.NormalizedScore(defectWeight, cooperateWeight)
	}
	return t.prototypes[argmax(scores)].Description()
}

// Trimmed returns a new unranked tournament keeping only the prototypes
// that ranked above zero, in their original order.
func (t *Tournament) Trimmed() *Tournament {
	t.mustBeRanked("Trimmed")
	var kept []Prototype
	for i, p := range t.prototypes {
		if t.rank[i] > 0 {
			kept = append(kept, p)
		}
	}
	return New(kept, Config{Rounds: t.rounds, Workers: t.workers, Progress: t.progress})
}

// RankTable maps each description to its rank.
func (t *Tournament) RankTable() map[string]float64 {
	t.mustBeRanked("RankTable")
	table := make(map[string]float64, len(t.prototypes))
	for i, p := range t.prototypes {
		table[p.Description()] = t.rank[i]
	}
	return table
}

// AverageScores maps each description to its mean payoff per round.
func (t *Tournament) AverageScores() (map[string]float64, error) {
	t.mustBeRanked("AverageScores")
	table := make(map[string]float64, len(t.prototypes))
	for i, p := range t.prototypes {
		avg, err := t.stats[i].Average()
		if err != nil {
			return nil, fmt.Errorf("average score for %s: %w", p.Description(), err)
		}
		table[p.Description()] = avg
	}
	return table, nil
}

func (t *Tournament) mustBeRanked(op string) {
	if !t.ranked {
		panic("tournament: " + op + " called before ComputeRanking")
	}
}

// normalize maps scores onto [0, 1] with the minimum at 0 and the
// maximum at 1. A pool where every score ties maps to 0.5 across the
// board rather than dividing by zero.
func normalize(scores []int) []float64 {
	lo, hi := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	ranks := make([]float64, len(scores))
	if hi == lo {
		for i := range ranks {
			ranks[i] = 0.5
		}
		return ranks
	}
	for i, s := range scores {
		ranks[i] = float64(s-lo) / float64(hi-lo)
	}
	return ranks
}

// argmax returns the index of the first maximum value, or -1 for an
// empty slice.
func argmax(values []float64) int {
	best := -1
	for i, v := range values {
		if best == -1 || v > values[best] {
			best = i
		}
	}
	return best
}
