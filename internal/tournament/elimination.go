package tournament

import (
	"context"
	"errors"

	"github.com/metaform3d/prisoners-dilemma/internal/logger"
)

const (
	// DefaultStopSize is the population size at which elimination stops.
	DefaultStopSize = 4
	// DefaultWeightStep is the sweep grid increment for both weights.
	DefaultWeightStep = 0.05
)

// SweepWinner records which prototype wins the reweighted scoring at
// one (defect weight, cooperate weight) grid point.
type SweepWinner struct {
	DefectWeight    float64
	CooperateWeight float64
	Description     string
}

// History accumulates each surviving prototype's rank and average score
// across elimination rounds, keyed by description. The first recorded
// round seeds two entries so every series carries an explicit starting
// column.
type History struct {
	Ranks    map[string][]float64
	Averages map[string][]float64
}

// Reporter consumes query results as an elimination run progresses.
// Implementations format and emit; they make no decisions.
type Reporter interface {
	RoundStandings(round int, standings []Standing)
	RoundSweep(round int, winners []SweepWinner)
}

// Options configures an elimination run.
type Options struct {
	Rounds     int     // rounds per pairing (default 200)
	StopSize   int     // run while the population is larger than this (default 4)
	WeightStep float64 // sweep grid increment (default 0.05)
	Workers    int     // parallel pairing rows (default 1)
	Progress   func(done, total int)
}

// RunElimination repeatedly ranks the population, reports the standings
// and the grid of reweighted winners, records survivor histories, and
// drops the zero-ranked prototypes, until the population is no larger
// than StopSize. A nil Reporter skips reporting. The returned History
// holds every survivor's rank and average score series.
func RunElimination(ctx context.Context, prototypes []Prototype, opts Options, rep Reporter) (*History, error) {
	if opts.StopSize <= 0 {
		opts.StopSize = DefaultStopSize
	}
	if opts.WeightStep <= 0 {
		opts.WeightStep = DefaultWeightStep
	}
	if len(prototypes) == 0 {
		return nil, errors.New("no prototypes to play")
	}

	lg := logger.ForRun(ctx)
	hist := &History{
		Ranks:    make(map[string][]float64),
		Averages: make(map[string][]float64),
	}

	t := New(prototypes, Config{
		Rounds:   opts.Rounds,
		Workers:  opts.Workers,
		Progress: opts.Progress,
	})

	for round := 1; t.Size() > opts.StopSize; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lg.Info().Int("round", round).Int("population", t.Size()).Msg("Ranking population")
		t.ComputeRanking()

		if rep != nil {
			rep.RoundStandings(round, t.Standings())
			rep.RoundSweep(round, sweep(t, opts.WeightStep))
		}

		if err := record(hist, t, round); err != nil {
			return nil, err
		}

		trimmed := t.Trimmed()
		if trimmed.Size() == t.Size() {
			// Only a fully tied pool trims nothing; looping further
			// would never terminate.
			lg.Warn().Int("population", t.Size()).Msg("Trim removed nobody, stopping early")
			return hist, nil
		}
		lg.Info().
			Int("round", round).
			Int("survivors", trimmed.Size()).
			Int("eliminated", t.Size()-trimmed.Size()).
			Msg("Trimmed population")
		t = trimmed
	}

	return hist, nil
}

// sweep evaluates the reweighted winner at every grid point: the
// cooperate weight walks [0, 1) and the defect weight [0, cooperate) in
// step increments. Each weight is a multiple of step rather than a
// running sum, so the grid shape does not drift under floating point.
func sweep(t *Tournament, step float64) []SweepWinner {
	var winners []SweepWinner
	for ci := 0; ; ci++ {
		c := float64(ci) * step
		if c >= 1 {
			break
		}
		for di := 0; ; di++ {
			d := float64(di) * step
			if d >= c {
				break
			}
			winners = append(winners, SweepWinner{
				DefectWeight:    d,
				CooperateWeight: c,
				Description:     t.TopNormalized(d, c),
			})
		}
	}
	return winners
}

// record appends this round's rank and average score for every
// survivor. The first round writes each value twice, giving the series
// its starting column.
func record(hist *History, t *Tournament, round int) error {
	ranks := t.RankTable()
	avgs, err := t.AverageScores()
	if err != nil {
		return err
	}
	for desc, rank := range ranks {
		if rank <= 0 {
			continue
		}
		avg := avgs[desc]
		if round == 1 {
			hist.Ranks[desc] = []float64{rank, rank}
			hist.Averages[desc] = []float64{avg, avg}
		} else {
			hist.Ranks[desc] = append(hist.Ranks[desc], rank)
			hist.Averages[desc] = append(hist.Averages[desc], avg)
		}
	}
	return nil
}
