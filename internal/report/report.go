// Package report formats tournament query results for the console. It
// only renders what the engine already computed; nothing here feeds
// back into play.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ttacon/chalk"

	"github.com/metaform3d/prisoners-dilemma/internal/tournament"
	"github.com/metaform3d/prisoners-dilemma/pkg/dilemma"
)

// Console writes tables to Out, with optional ANSI color. It implements
// tournament.Reporter.
type Console struct {
	Out   io.Writer
	Color bool
}

func (c *Console) paint(color chalk.Color, s string) string {
	if !c.Color {
		return s
	}
	return color.Color(s)
}

// SignatureTable prints every genome with its signature and the
// signature decoded back to binary, one hex digit per 4-bit group.
func (c *Console) SignatureTable() {
	fmt.Fprintln(c.Out, c.paint(chalk.Green, "genome  signature  decoded"))
	for _, g := range dilemma.AllGenomes() {
		sig := dilemma.ComputeSignature(g)
		fmt.Fprintf(c.Out, "%s   %s  %s\n", g.Name(), sig, decodeSignature(sig))
	}
	fmt.Fprintln(c.Out)
}

// decodeSignature expands each hex digit to its 4-bit binary form,
// leaving the separator in place.
func decodeSignature(sig string) string {
	groups := make([]string, 0, len(sig))
	for _, ch := range sig {
		if ch == '-' {
			groups = append(groups, "-")
			continue
		}
		v, err := strconv.ParseUint(string(ch), 16, 8)
		if err != nil {
			groups = append(groups, string(ch))
			continue
		}
		groups = append(groups, fmt.Sprintf("%04b", v))
	}
	return strings.Join(groups, " ")
}

// RoundStandings prints one elimination round's ranked pool, best
// score first.
func (c *Console) RoundStandings(round int, standings []tournament.Standing) {
	header := fmt.Sprintf("--- round %d: %d prototypes ---", round, len(standings))
	fmt.Fprintln(c.Out, c.paint(chalk.Green, header))
	for _, s := range standings {
		fmt.Fprintf(c.Out, "%s  %s  rank %.2f  score %6d  %s\n",
			s.Description, s.Signature, s.Rank, s.Score, s.Stats.Summary())
	}
	fmt.Fprintln(c.Out)
}

// RoundSweep prints the reweighted winner at each grid point as
// "defect weight, cooperate weight, winner" rows.
func (c *Console) RoundSweep(round int, winners []tournament.SweepWinner) {
	header := fmt.Sprintf("--- round %d: weighted winners ---", round)
	fmt.Fprintln(c.Out, c.paint(chalk.Green, header))
	for _, w := range winners {
		fmt.Fprintf(c.Out, "%.2f, %.2f, %s\n", w.DefectWeight, w.CooperateWeight, w.Description)
	}
	fmt.Fprintln(c.Out)
}

// RankHistory prints each survivor's rank series as CSV rows.
func (c *Console) RankHistory(h *tournament.History) {
	c.historyTable("rank history", h.Ranks)
}

// AverageHistory prints each survivor's average score series as CSV
// rows.
func (c *Console) AverageHistory(h *tournament.History) {
	c.historyTable("average score history", h.Averages)
}

func (c *Console) historyTable(title string, series map[string][]float64) {
	fmt.Fprintln(c.Out, c.paint(chalk.Green, "--- "+title+" ---"))
	fmt.Fprintln(c.Out, historyHeader(series))

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		row := make([]string, 0, len(series[name])+1)
		row = append(row, strconv.Quote(name))
		for _, v := range series[name] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		fmt.Fprintln(c.Out, strings.Join(row, ", "))
	}
	fmt.Fprintln(c.Out)
}

// historyHeader spans the longest series: a name column, a starting
// column, and one column per elimination round.
func historyHeader(series map[string][]float64) string {
	longest := 0
	for _, values := range series {
		if len(values) > longest {
			longest = len(values)
		}
	}
	cols := []string{"name", "start"}
	for i := 1; i < longest; i++ {
		cols = append(cols, fmt.Sprintf("round%d", i))
	}
	return strings.Join(cols, ", ")
}
