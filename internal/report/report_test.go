package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ttacon/chalk"

	"github.com/metaform3d/prisoners-dilemma/internal/tournament"
	"github.com/metaform3d/prisoners-dilemma/pkg/dilemma"
)

func TestDecodeSignature(t *testing.T) {
	tests := []struct {
		sig  string
		want string
	}{
		{"0000-0000", "0000 0000 0000 0000 - 0000 0000 0000 0000"},
		{"ffff-ffff", "1111 1111 1111 1111 - 1111 1111 1111 1111"},
		{"7654-3210", "0111 0110 0101 0100 - 0011 0010 0001 0000"},
	}
	for _, tt := range tests {
		if got := decodeSignature(tt.sig); got != tt.want {
			t.Errorf("decodeSignature(%q) = %q, want %q", tt.sig, got, tt.want)
		}
	}
}

func TestSignatureTable(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{Out: &buf}
	c.SignatureTable()

	out := buf.String()
	if !strings.Contains(out, "00000   0000-0000  0000 0000 0000 0000 - 0000 0000 0000 0000") {
		t.Errorf("missing always-cooperate row in:\n%s", out)
	}
	if !strings.Contains(out, "11111   ffff-ffff  1111 1111 1111 1111 - 1111 1111 1111 1111") {
		t.Errorf("missing always-defect row in:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 34 {
		t.Errorf("table has %d lines, want 34 (header + 32 rows + blank)", got)
	}
}

func TestRoundStandings(t *testing.T) {
	rounds := make([]dilemma.Round, 0, 20)
	for i := 0; i < 10; i++ {
		rounds = append(rounds, dilemma.Round{Own: dilemma.Defect, Opponent: dilemma.Cooperate})
		rounds = append(rounds, dilemma.Round{Own: dilemma.Defect, Opponent: dilemma.Defect})
	}
	standings := []tournament.Standing{
		{Description: "11111", Signature: "ffff-ffff", Rank: 1, Score: 60, Stats: dilemma.StatsOf(rounds)},
	}

	var buf bytes.Buffer
	c := &Console{Out: &buf}
	c.RoundStandings(2, standings)

	out := buf.String()
	if !strings.Contains(out, "--- round 2: 1 prototypes ---") {
		t.Errorf("missing header in:\n%s", out)
	}
	want := "11111  ffff-ffff  rank 1.00  score     60  0*3=0 10*1=10 10*5=50 0*0=0 \n"
	if !strings.Contains(out, want) {
		t.Errorf("missing row %q in:\n%s", want, out)
	}
}

func TestRoundSweep(t *testing.T) {
	winners := []tournament.SweepWinner{
		{DefectWeight: 0, CooperateWeight: 0.05, Description: "11111"},
		{DefectWeight: 0.05, CooperateWeight: 0.1, Description: "00011"},
	}

	var buf bytes.Buffer
	c := &Console{Out: &buf}
	c.RoundSweep(1, winners)

	out := buf.String()
	if !strings.Contains(out, "0.00, 0.05, 11111\n") {
		t.Errorf("missing first grid row in:\n%s", out)
	}
	if !strings.Contains(out, "0.05, 0.10, 00011\n") {
		t.Errorf("missing second grid row in:\n%s", out)
	}
}

func TestHistoryTables(t *testing.T) {
	h := &tournament.History{
		Ranks: map[string][]float64{
			"11111": {1, 1, 1},
			"00011": {0.5, 0.5},
		},
		Averages: map[string][]float64{
			"11111": {3, 3, 2.5},
			"00011": {2.2, 2.2},
		},
	}

	var buf bytes.Buffer
	c := &Console{Out: &buf}
	c.RankHistory(h)
	c.AverageHistory(h)

	out := buf.String()
	if !strings.Contains(out, "name, start, round1, round2\n") {
		t.Errorf("missing scaled header in:\n%s", out)
	}
	// Rows come out sorted by name, quoted, comma separated.
	if !strings.Contains(out, "\"00011\", 0.5, 0.5\n") {
		t.Errorf("missing rank row in:\n%s", out)
	}
	if !strings.Contains(out, "\"11111\", 1, 1, 1\n") {
		t.Errorf("missing rank row in:\n%s", out)
	}
	if !strings.Contains(out, "\"11111\", 3, 3, 2.5\n") {
		t.Errorf("missing average row in:\n%s", out)
	}
	if idx1, idx2 := strings.Index(out, "\"00011\""), strings.Index(out, "\"11111\""); idx1 > idx2 {
		t.Error("rows not sorted by name")
	}
}

func TestHistoryHeader(t *testing.T) {
	tests := []struct {
		name   string
		series map[string][]float64
		want   string
	}{
		{"empty", map[string][]float64{}, "name, start"},
		{"seeded only", map[string][]float64{"a": {1, 1}}, "name, start, round1"},
		{"three rounds", map[string][]float64{"a": {1, 1}, "b": {1, 1, 1, 1}}, "name, start, round1, round2, round3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := historyHeader(tt.series); got != tt.want {
				t.Errorf("historyHeader = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaint(t *testing.T) {
	plain := &Console{}
	if got := plain.paint(chalk.Green, "text"); got != "text" {
		t.Errorf("paint without color = %q, want %q", got, "text")
	}

	colored := &Console{Color: true}
	got := colored.paint(chalk.Green, "text")
	if got == "text" || !strings.Contains(got, "text") {
		t.Errorf("paint with color = %q, want wrapped escape codes", got)
	}
}
