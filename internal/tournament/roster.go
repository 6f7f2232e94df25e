package tournament

import "github.com/metaform3d/prisoners-dilemma/pkg/dilemma"

// Prototype is one tournament entry: a genome plus its precomputed
// behavioral signature.
type Prototype struct {
	Genome    dilemma.Genome
	Signature string
}

// NewPrototype pairs a genome with its signature.
func NewPrototype(g dilemma.Genome) Prototype {
	return Prototype{Genome: g, Signature: dilemma.ComputeSignature(g)}
}

// Description returns the prototype's display name, the genome encoding.
func (p Prototype) Description() string {
	return p.Genome.Name()
}

// AllPrototypes returns all 32 genomes as independent entries, the
// behaviorally redundant ones included.
func AllPrototypes() []Prototype {
	genomes := dilemma.AllGenomes()
	protos := make([]Prototype, 0, len(genomes))
	for _, g := range genomes {
		protos = append(protos, NewPrototype(g))
	}
	return protos
}

// UniquePrototypes returns one entry per distinct behavior, 26 in all.
// Always-cooperate ("00000") and always-defect ("11111") head the list
// even though other genomes share their behavior; the rest are scanned
// in counting order and kept only when their signature is new.
func UniquePrototypes() []Prototype {
	genomes := dilemma.AllGenomes()
	protos := make([]Prototype, 0, len(genomes))
	seen := make(map[string]bool)

	for _, g := range []dilemma.Genome{genomes[0], genomes[len(genomes)-1]} {
		p := NewPrototype(g)
		seen[p.Signature] = true
		protos = append(protos, p)
	}
	for _, g := range genomes {
		p := NewPrototype(g)
		if seen[p.Signature] {
			continue
		}
		seen[p.Signature] = true
		protos = append(protos, p)
	}
	return protos
}
