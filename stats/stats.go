// Package stats fills the per-group statistics of a resolved run: target and
// decoy counts and the intensity summary of every fine group, plus the
// observed sequence coverage of every protein.
package stats

import (
	"slices"
	"strings"

	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/partition"
)

// Median returns the median of values: the middle value of the sorted input
// for odd lengths, the mean of the two central values for even lengths, and
// 0 for an empty slice. values is not modified.
//
// Complexity: O(n log n).
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Compute fills Target, Decoy, TargetPlusDecoy and Intensity of every fine
// group. Proteins are counted by their record's Decoy flag; Intensity is the
// median of the experimental peptide intensities of the group.
func Compute(g *core.Graph, fine []partition.FineGroup) {
	if g == nil {
		return
	}
	for i := range fine {
		grp := &fine[i]
		grp.Target, grp.Decoy = 0, 0
		for _, p := range grp.Proteins {
			if g.Proteins[p].Record.Decoy {
				grp.Decoy++
			} else {
				grp.Target++
			}
		}
		grp.TargetPlusDecoy = grp.Target + grp.Decoy

		intensities := make([]float64, 0, len(grp.Peptides))
		for _, p := range grp.Peptides {
			if g.Peptides[p].Experimental {
				intensities = append(intensities, g.Peptides[p].Intensity)
			}
		}
		grp.Intensity = Median(intensities)
	}
}

// ObservedCoverage sets ProteinNode.ObservedCoverage to the percentage of
// residues of the record sequence covered by at least one occurrence of an
// adjacent experimental peptide. Proteins without a sequence get 0.
//
// Complexity: O(Σ |sequence| · k) for k adjacent observed peptides.
func ObservedCoverage(g *core.Graph) {
	if g == nil {
		return
	}
	for p := range g.Proteins {
		prot := &g.Proteins[p]
		seq := prot.Record.Sequence
		if seq == "" {
			prot.ObservedCoverage = 0
			continue
		}
		covered := make([]bool, len(seq))
		for _, pep := range prot.Peptides {
			if !g.Peptides[pep].Experimental {
				continue
			}
			markOccurrences(covered, seq, g.Peptides[pep].Sequence)
		}
		n := 0
		for _, c := range covered {
			if c {
				n++
			}
		}
		prot.ObservedCoverage = 100 * float64(n) / float64(len(seq))
	}
}

// markOccurrences flags every residue of seq covered by an occurrence of sub,
// overlapping occurrences included.
func markOccurrences(covered []bool, seq, sub string) {
	if sub == "" {
		return
	}
	for from := 0; from < len(seq); {
		i := strings.Index(seq[from:], sub)
		if i < 0 {
			return
		}
		start := from + i
		for j := start; j < start+len(sub); j++ {
			covered[j] = true
		}
		from = start + 1
	}
}
