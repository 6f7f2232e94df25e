package dilemma

import "testing"

func TestMultipleRounds_Count(t *testing.T) {
	for _, count := range []int{0, 1, 10, 200} {
		a := NewStrategy(mustGenome(t, "00011"))
		b := NewStrategy(mustGenome(t, "11111"))
		rounds := MultipleRounds(a, b, count)
		if len(rounds) != count {
			t.Errorf("MultipleRounds(_, _, %d) returned %d rounds", count, len(rounds))
		}
	}
}

func TestMultipleRounds_AllCooperate(t *testing.T) {
	g := mustGenome(t, "00000")
	rounds := MultipleRounds(NewStrategy(g), NewStrategy(g), 10)
	for i, r := range rounds {
		if r.Outcome() != Saint {
			t.Fatalf("round %d = %v, want saint", i, r.Outcome())
		}
	}
	s := StatsOf(rounds)
	if s.Score() != 30 {
		t.Errorf("score = %d, want 30", s.Score())
	}
}

func TestMultipleRounds_DefectorExploitsCooperator(t *testing.T) {
	coop := NewStrategy(mustGenome(t, "00000"))
	defector := NewStrategy(mustGenome(t, "11111"))

	rounds := MultipleRounds(defector, coop, 10)
	for i, r := range rounds {
		if r.Outcome() != Jerk {
			t.Fatalf("round %d = %v, want jerk", i, r.Outcome())
		}
	}
	if got := StatsOf(rounds).Score(); got != 50 {
		t.Errorf("defector score = %d, want 50", got)
	}
}

func TestMultipleRounds_SimultaneousMoves(t *testing.T) {
	// Suspicious tit-for-tat against plain tit-for-tat locks into a
	// strict alternation, which only happens when neither side sees the
	// current round's move before committing its own.
	stft := NewStrategy(mustGenome(t, "10011"))
	tft := NewStrategy(mustGenome(t, "00011"))

	rounds := MultipleRounds(stft, tft, 6)
	for i, r := range rounds {
		want := Round{Own: Defect, Opponent: Cooperate}
		if i%2 == 1 {
			want = Round{Own: Cooperate, Opponent: Defect}
		}
		if r != want {
			t.Errorf("round %d = %+v, want %+v", i, r, want)
		}
	}
}

func TestMultipleRounds_PrototypeUntouched(t *testing.T) {
	proto := NewStrategy(mustGenome(t, "00011"))

	MultipleRounds(proto, proto, 5)

	if !proto.IsFirstPlay() {
		t.Fatal("prototype lost first-play state after being passed to MultipleRounds")
	}

	// Self-pairing plays two independent copies.
	rounds := MultipleRounds(proto, proto, 5)
	for i, r := range rounds {
		if r.Outcome() != Saint {
			t.Errorf("self-pairing round %d = %v, want saint", i, r.Outcome())
		}
	}
}

func TestMultipleRounds_RejectsPlayedStrategy(t *testing.T) {
	played := NewStrategy(mustGenome(t, "00011"))
	played.Choose()
	fresh := NewStrategy(mustGenome(t, "00000"))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for strategy that already played")
		}
	}()
	MultipleRounds(played, fresh, 1)
}
