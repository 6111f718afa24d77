// File: graph.go
// Role: Run-scoped protein–peptide graph: lookup, insertion, edges, cloning.
// Determinism:
//   - Peptides stay sorted by Sequence after every insertion.
//   - Index sets are sorted ascending; Connect is idempotent.
// Concurrency:
//   - A Graph is owned by a single run and is not safe for concurrent mutation.

package core

import (
	"slices"
	"sort"

	"github.com/pkg/errors"
)

// Graph is the bipartite evidence graph of one run.
type Graph struct {
	Proteins []ProteinNode
	Peptides []PeptideNode

	// byAccession is shared read-only with the Database it was copied from.
	byAccession map[string]int
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{byAccession: map[string]int{}}
}

// ProteinByAccession returns the index of the protein with the given accession.
func (g *Graph) ProteinByAccession(accession string) (int, error) {
	if idx, ok := g.byAccession[accession]; ok {
		return idx, nil
	}

	return 0, errors.Wrapf(ErrProteinNotFound, "accession %q", accession)
}

// FindPeptide returns the index of the peptide with sequence seq, or
// len(g.Peptides) if there is none. Callers must check for the sentinel.
//
// Complexity: O(|seq| · log S).
func (g *Graph) FindPeptide(seq string) int {
	return g.findIn(seq, len(g.Peptides))
}

// findIn binary-searches the sorted prefix g.Peptides[:n] and returns n on a miss.
func (g *Graph) findIn(seq string, n int) int {
	i := sort.Search(n, func(i int) bool { return g.Peptides[i].Sequence >= seq })
	if i < n && g.Peptides[i].Sequence == seq {
		return i
	}

	return n
}

// InsertPeptide inserts a theoretical-free peptide node for seq in sorted
// position and returns its index. An existing sequence returns its index.
//
// Complexity: O(S + E).
func (g *Graph) InsertPeptide(seq string) (int, error) {
	if seq == "" {
		return 0, ErrEmptySequence
	}
	n := len(g.Peptides)
	pos := sort.Search(n, func(i int) bool { return g.Peptides[i].Sequence >= seq })
	if pos < n && g.Peptides[pos].Sequence == seq {
		return pos, nil
	}

	g.Peptides = slices.Insert(g.Peptides, pos, newPeptideNode(seq))
	// shift protein-side references at or after the insertion point
	var pep *int
	for p := range g.Proteins {
		for i := range g.Proteins[p].Peptides {
			pep = &g.Proteins[p].Peptides[i]
			if *pep >= pos {
				*pep++
			}
		}
	}

	return pos, nil
}

// InsertPeptides adds all sequences not yet present, then restores sorted
// order once. Use it when many misses arrive before any lookup.
//
// Complexity: O((S+n) log (S+n) + E).
func (g *Graph) InsertPeptides(seqs []string) int {
	before := len(g.Peptides)
	seen := make(map[string]struct{}, len(seqs))
	for _, seq := range seqs {
		if seq == "" {
			continue
		}
		if _, dup := seen[seq]; dup {
			continue
		}
		seen[seq] = struct{}{}
		if g.findIn(seq, before) < before {
			continue
		}
		g.Peptides = append(g.Peptides, newPeptideNode(seq))
	}
	added := len(g.Peptides) - before
	if added == 0 {
		return 0
	}

	// order[newPos] = oldPos
	order := make([]int, len(g.Peptides))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return g.Peptides[order[a]].Sequence < g.Peptides[order[b]].Sequence
	})
	remap := make([]int, len(order))
	sorted := make([]PeptideNode, len(order))
	for newPos, oldPos := range order {
		remap[oldPos] = newPos
		sorted[newPos] = g.Peptides[oldPos]
	}
	g.Peptides = sorted
	for p := range g.Proteins {
		// the remap is monotone on old indices, so the sets stay sorted
		for i, old := range g.Proteins[p].Peptides {
			g.Proteins[p].Peptides[i] = remap[old]
		}
	}

	return added
}

// Connect adds the bidirectional edge protein–peptide if it is missing.
func (g *Graph) Connect(protein, peptide int) error {
	if protein < 0 || protein >= len(g.Proteins) {
		return errors.Wrapf(ErrProteinNotFound, "index %d", protein)
	}
	if peptide < 0 || peptide >= len(g.Peptides) {
		return errors.Wrapf(ErrPeptideNotFound, "index %d", peptide)
	}
	g.Proteins[protein].Peptides = insertSorted(g.Proteins[protein].Peptides, peptide)
	g.Peptides[peptide].Proteins = insertSorted(g.Peptides[peptide].Proteins, protein)

	return nil
}

// Observe marks peptide as experimental. The first observation fixes Origin
// and Source; every observation adds its intensity.
func (g *Graph) Observe(peptide int, intensity float64, origin string, src Provenance) error {
	if peptide < 0 || peptide >= len(g.Peptides) {
		return errors.Wrapf(ErrPeptideNotFound, "index %d", peptide)
	}
	pep := &g.Peptides[peptide]
	if !pep.Experimental {
		pep.Experimental = true
		pep.Origin = origin
		pep.Source = src
	}
	pep.Intensity += intensity
	pep.Observations++

	return nil
}

// CountExperimental refreshes ProteinNode.ExperimentalPeptides.
func (g *Graph) CountExperimental() {
	for p := range g.Proteins {
		n := 0
		for _, pep := range g.Proteins[p].Peptides {
			if g.Peptides[pep].Experimental {
				n++
			}
		}
		g.Proteins[p].ExperimentalPeptides = n
	}
}

// Clone returns a deep copy of g.
//
// Complexity: O(P + S + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		Proteins:    make([]ProteinNode, len(g.Proteins)),
		Peptides:    make([]PeptideNode, len(g.Peptides)),
		byAccession: g.byAccession,
	}
	for i := range g.Proteins {
		clone.Proteins[i] = cloneProtein(g.Proteins[i])
	}
	for i := range g.Peptides {
		clone.Peptides[i] = clonePeptide(g.Peptides[i])
	}

	return clone
}

func cloneProtein(p ProteinNode) ProteinNode {
	p.Peptides = slices.Clone(p.Peptides)
	p.Indistinguishable = slices.Clone(p.Indistinguishable)

	return p
}

func clonePeptide(p PeptideNode) PeptideNode {
	p.Proteins = slices.Clone(p.Proteins)

	return p
}

// insertSorted inserts v into the ascending slice s unless already present.
func insertSorted(s []int, v int) []int {
	i, found := slices.BinarySearch(s, v)
	if found {
		return s
	}

	return slices.Insert(s, i, v)
}
