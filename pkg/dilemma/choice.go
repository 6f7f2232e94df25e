// Package dilemma implements the two-player iterated prisoner's dilemma
// with deterministic memory-1 strategies encoded as 5-bit genomes.
package dilemma

// Choice is one player's move in a single round.
type Choice uint8

const (
	Cooperate Choice = 0
	Defect    Choice = 1
)

// Bit returns the encoding bit for the choice: 0 cooperate, 1 defect.
func (c Choice) Bit() int {
	return int(c)
}

func (c Choice) String() string {
	if c == Cooperate {
		return "cooperate"
	}
	return "defect"
}
