package dilemma

import "fmt"

// GenomeBits is the size of a strategy genome: one opening move plus one
// response per combination of the previous round's moves.
const GenomeBits = 5

// InvalidGenomeError describes an encoding that cannot name a memory-1
// strategy.
type InvalidGenomeError struct {
	Encoding string
	Reason   string
}

func (e *InvalidGenomeError) Error() string {
	return fmt.Sprintf("invalid genome %q: %s", e.Encoding, e.Reason)
}

// Genome encodes a deterministic memory-1 strategy. Bit 0 is the opening
// move; bits 1-4 hold the response for each (own last, opponent last)
// combination.
type Genome [GenomeBits]Choice

// ParseGenome converts a 5-character binary string such as "01011" into
// a Genome.
func ParseGenome(encoding string) (Genome, error) {
	var g Genome
	if len(encoding) != GenomeBits {
		return g, &InvalidGenomeError{encoding, fmt.Sprintf("want exactly %d bits", GenomeBits)}
	}
	for i := 0; i < GenomeBits; i++ {
		switch encoding[i] {
		case '0':
			g[i] = Cooperate
		case '1':
			g[i] = Defect
		default:
			return g, &InvalidGenomeError{encoding, fmt.Sprintf("bit %d is not 0 or 1", i)}
		}
	}
	return g, nil
}

// Name returns the genome's 5-character binary encoding.
func (g Genome) Name() string {
	buf := make([]byte, GenomeBits)
	for i, c := range g {
		buf[i] = byte('0' + c.Bit())
	}
	return string(buf)
}

// AllGenomes returns the 32 possible genomes in binary counting order,
// "00000" through "11111".
func AllGenomes() []Genome {
	genomes := make([]Genome, 0, 1<<GenomeBits)
	for n := 0; n < 1<<GenomeBits; n++ {
		var g Genome
		for i := 0; i < GenomeBits; i++ {
			if n&(1<<(GenomeBits-1-i)) != 0 {
				g[i] = Defect
			}
		}
		genomes = append(genomes, g)
	}
	return genomes
}

// Strategy is a playable instance of a genome. It remembers only the
// previous round, so a fresh value replays identically. Strategy is a
// value type: assigning or passing one copies it, which is how a single
// prototype is reused across pairings without leaking state.
type Strategy struct {
	genome    Genome
	firstPlay bool
	ownLast   Choice
	oppLast   Choice
}

// NewStrategy returns a strategy in its first-play state.
func NewStrategy(g Genome) Strategy {
	return Strategy{genome: g, firstPlay: true}
}

// Genome returns the genome the strategy plays.
func (s *Strategy) Genome() Genome {
	return s.genome
}

// IsFirstPlay reports whether the strategy has not chosen yet.
func (s *Strategy) IsFirstPlay() bool {
	return s.firstPlay
}

// Choose returns the move for the upcoming round and records it as the
// strategy's own last move. The first call plays the opening bit; later
// calls answer the previous round.
func (s *Strategy) Choose() Choice {
	var c Choice
	if s.firstPlay {
		c = s.genome[0]
		s.firstPlay = false
	} else {
		c = s.genome[1+s.ownLast.Bit()+2*s.oppLast.Bit()]
	}
	s.ownLast = c
	return c
}

// Observe records the opponent's most recent choice.
func (s *Strategy) Observe(opp Choice) {
	s.oppLast = opp
}
