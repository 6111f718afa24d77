// Package reindex assigns compact indices to the proteins and peptides that
// belong to a fine group. Nodes outside every fine group are excluded: their
// entry in the old→new table holds a sentinel equal to the compacted size.
//
// New indices follow fine-group order, then member order inside each group.
// Reindexing runs after package partition and before package classify, which
// only looks at reindexed nodes.
package reindex

import (
	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/partition"
)

// Table maps node indices between the full collections and the compacted,
// fine-group-reachable subset.
type Table struct {
	// Proteins maps old → new; excluded proteins hold len(ProteinOrder).
	Proteins []int
	// Peptides maps old → new; excluded peptides hold len(PeptideOrder).
	Peptides []int
	// ProteinOrder maps new → old.
	ProteinOrder []int
	// PeptideOrder maps new → old.
	PeptideOrder []int
}

// Build computes the reindexing table of g for the given fine groups.
//
// Complexity: O(P + S).
func Build(g *core.Graph, fine []partition.FineGroup) Table {
	var t Table
	if g == nil {
		return t
	}
	t.Proteins = make([]int, len(g.Proteins))
	t.Peptides = make([]int, len(g.Peptides))
	for i := range t.Proteins {
		t.Proteins[i] = -1
	}
	for i := range t.Peptides {
		t.Peptides[i] = -1
	}

	for _, grp := range fine {
		for _, p := range grp.Proteins {
			if t.Proteins[p] < 0 {
				t.Proteins[p] = len(t.ProteinOrder)
				t.ProteinOrder = append(t.ProteinOrder, p)
			}
		}
		for _, p := range grp.Peptides {
			if t.Peptides[p] < 0 {
				t.Peptides[p] = len(t.PeptideOrder)
				t.PeptideOrder = append(t.PeptideOrder, p)
			}
		}
	}

	// the sentinel is only known once every reachable node is numbered
	protSentinel, pepSentinel := len(t.ProteinOrder), len(t.PeptideOrder)
	for i, v := range t.Proteins {
		if v < 0 {
			t.Proteins[i] = protSentinel
		}
	}
	for i, v := range t.Peptides {
		if v < 0 {
			t.Peptides[i] = pepSentinel
		}
	}

	return t
}

// ProteinSentinel returns the value marking an excluded protein.
func (t Table) ProteinSentinel() int { return len(t.ProteinOrder) }

// PeptideSentinel returns the value marking an excluded peptide.
func (t Table) PeptideSentinel() int { return len(t.PeptideOrder) }

// Protein returns the compact index of protein old and whether it is reachable.
func (t Table) Protein(old int) (int, bool) {
	if old < 0 || old >= len(t.Proteins) {
		return t.ProteinSentinel(), false
	}
	idx := t.Proteins[old]

	return idx, idx < t.ProteinSentinel()
}

// Peptide returns the compact index of peptide old and whether it is reachable.
func (t Table) Peptide(old int) (int, bool) {
	if old < 0 || old >= len(t.Peptides) {
		return t.PeptideSentinel(), false
	}
	idx := t.Peptides[old]

	return idx, idx < t.PeptideSentinel()
}
