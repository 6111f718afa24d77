// Package classify labels every reindexed protein as primary or secondary and
// links proteins whose identifying peptide sets are indistinguishable.
//
// A peptide identifies a protein when it is experimental, reindexed and
// adjacent to that protein. A protein with at least one identifying peptide
// whose only reindexed protein is that protein is Primary, otherwise it is
// Secondary. Two or more proteins with exactly equal identifying sets are
// linked as indistinguishable and relabelled PrimaryIndistinguishable when any
// of them is primary, SecondaryIndistinguishable otherwise.
//
// Labels are computed from the graph and the reindexing table without
// touching the nodes; Apply writes them in one step.
package classify

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/reindex"
)

// Result holds the labels of one run, indexed by old protein index.
type Result struct {
	Types []core.ProteinType
	// Indistinguishable[p] lists the other proteins sharing p's identifying set.
	Indistinguishable [][]int
	// Identifying[p] is p's identifying set as sorted compact peptide indices.
	Identifying [][]int
}

// Compute classifies the proteins of g listed in t. Proteins outside t stay
// core.Unclassified.
//
// Complexity: O(E + P log P) with set keys hashed as strings.
func Compute(g *core.Graph, t reindex.Table) Result {
	res := Result{}
	if g == nil {
		return res
	}
	n := len(g.Proteins)
	res.Types = make([]core.ProteinType, n)
	res.Indistinguishable = make([][]int, n)
	res.Identifying = make([][]int, n)

	// 1. Reachable protein degree of every reindexed peptide
	degree := make([]int, t.PeptideSentinel())
	for newPep, oldPep := range t.PeptideOrder {
		for _, prot := range g.Peptides[oldPep].Proteins {
			if _, ok := t.Protein(prot); ok {
				degree[newPep]++
			}
		}
	}

	// 2. Identifying sets and primary/secondary
	bySet := make(map[string][]int)
	var keys []string
	for _, p := range t.ProteinOrder {
		ident := make([]int, 0, len(g.Proteins[p].Peptides))
		primary := false
		for _, pep := range g.Proteins[p].Peptides {
			if !g.Peptides[pep].Experimental {
				continue
			}
			newPep, ok := t.Peptide(pep)
			if !ok {
				continue
			}
			ident = append(ident, newPep)
			if degree[newPep] == 1 {
				primary = true
			}
		}
		slices.Sort(ident)
		res.Identifying[p] = ident
		if primary {
			res.Types[p] = core.Primary
		} else {
			res.Types[p] = core.Secondary
		}

		key := setKey(ident)
		if _, ok := bySet[key]; !ok {
			keys = append(keys, key)
		}
		bySet[key] = append(bySet[key], p)
	}

	// 3. Indistinguishable groups by exact set equality
	for _, key := range keys {
		members := bySet[key]
		if len(members) < 2 {
			continue
		}
		anyPrimary := false
		for _, p := range members {
			anyPrimary = anyPrimary || res.Types[p] == core.Primary
		}
		label := core.SecondaryIndistinguishable
		if anyPrimary {
			label = core.PrimaryIndistinguishable
		}
		slices.Sort(members)
		for _, p := range members {
			res.Types[p] = label
			others := make([]int, 0, len(members)-1)
			for _, q := range members {
				if q != p {
					others = append(others, q)
				}
			}
			res.Indistinguishable[p] = others
		}
	}

	return res
}

// Apply writes the labels and indistinguishable links of r onto g.
func Apply(g *core.Graph, r Result) {
	if g == nil {
		return
	}
	for p := range g.Proteins {
		if p < len(r.Types) {
			g.Proteins[p].Type = r.Types[p]
			g.Proteins[p].Indistinguishable = r.Indistinguishable[p]
		}
	}
}

func setKey(set []int) string {
	var b strings.Builder
	for i, v := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
