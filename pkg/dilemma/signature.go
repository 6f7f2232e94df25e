package dilemma

import "strconv"

// ComputeSignature fingerprints a genome's observable behavior. Each of
// the eight possible 3-round opponent histories is probed against a
// fresh strategy; the opening move plus the three responses pack into a
// 4-bit code (opening as the high bit) emitted as one lowercase hex
// digit. Probe bits are inverted on the way in: a 0 bit plays defect, a
// 1 bit plays cooperate.
//
// A "-" is appended when the signature is exactly 4 characters long, so
// only the first group is ever delimited ("0000-0000", never
// "0000-0000-..."). Existing signature tables use this exact shape.
//
// Two genomes with the same signature are indistinguishable over any
// 3-round interaction. "00000" maps to "0000-0000", "11111" to
// "ffff-ffff".
func ComputeSignature(g Genome) string {
	sig := ""
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				s := NewStrategy(g)
				code := s.Choose().Bit()
				for _, probe := range [3]int{a, b, c} {
					if probe == 0 {
						s.Observe(Defect)
					} else {
						s.Observe(Cooperate)
					}
					code = code<<1 | s.Choose().Bit()
				}
				sig += strconv.FormatInt(int64(code), 16)
				if len(sig) == 4 {
					sig += "-"
				}
			}
		}
	}
	return sig
}

// AllSignatures maps every genome name to its signature.
func AllSignatures() map[string]string {
	sigs := make(map[string]string, 1<<GenomeBits)
	for _, g := range AllGenomes() {
		sigs[g.Name()] = ComputeSignature(g)
	}
	return sigs
}
