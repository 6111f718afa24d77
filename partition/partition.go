package partition

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/dfs"
)

// Compute partitions g into coarse and fine groups and records each node's
// group indices on the node.
func Compute(g *core.Graph) (*Partition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	part := &Partition{}
	visited := dfs.NewVisited(g)

	// 0. Drop memberships left by an earlier pass
	for i := range g.Proteins {
		g.Proteins[i].CoarseGroup, g.Proteins[i].FineGroup = core.NoGroup, core.NoGroup
	}
	for i := range g.Peptides {
		g.Peptides[i].CoarseGroup, g.Peptides[i].FineGroup = core.NoGroup, core.NoGroup
	}

	// 1. Coarse phase over every edge
	coarse := func(seed dfs.Node) error {
		if visited.Seen(seed) {
			return nil
		}
		nodes, err := dfs.Walk(g, seed, visited)
		if err != nil {
			return errors.Wrap(err, "partition: coarse walk")
		}
		grp := CoarseGroup{Index: len(part.Coarse)}
		grp.Proteins, grp.Peptides = split(nodes)
		for _, p := range grp.Proteins {
			g.Proteins[p].CoarseGroup = grp.Index
		}
		for _, p := range grp.Peptides {
			g.Peptides[p].CoarseGroup = grp.Index
		}
		part.Coarse = append(part.Coarse, grp)

		return nil
	}
	for i := range g.Proteins {
		if err := coarse(dfs.ProteinNode(i)); err != nil {
			return nil, err
		}
	}
	for i := range g.Peptides {
		if err := coarse(dfs.PeptideNode(i)); err != nil {
			return nil, err
		}
	}

	// 2. Fine phase over observed edges, with fresh markers
	visited.Reset()
	observed := dfs.WithFilterEdge(func(_, peptide int) bool {
		return g.Peptides[peptide].Experimental
	})
	fine := func(c int, seed dfs.Node) error {
		if visited.Seen(seed) || !hasObservedEdge(g, seed) {
			return nil
		}
		nodes, err := dfs.Walk(g, seed, visited, observed)
		if err != nil {
			return errors.Wrap(err, "partition: fine walk")
		}
		grp := FineGroup{Index: len(part.Fine), Coarse: c}
		grp.Proteins, grp.Peptides = split(nodes)
		for _, p := range grp.Proteins {
			g.Proteins[p].FineGroup = grp.Index
		}
		for _, p := range grp.Peptides {
			g.Peptides[p].FineGroup = grp.Index
		}
		part.Fine = append(part.Fine, grp)
		part.Coarse[c].Fine = append(part.Coarse[c].Fine, grp.Index)

		return nil
	}
	for c := range part.Coarse {
		for _, p := range part.Coarse[c].Proteins {
			if err := fine(c, dfs.ProteinNode(p)); err != nil {
				return nil, err
			}
		}
		for _, p := range part.Coarse[c].Peptides {
			if err := fine(c, dfs.PeptideNode(p)); err != nil {
				return nil, err
			}
		}
	}

	return part, nil
}

// split separates walked nodes into sorted protein and peptide indices.
func split(nodes []dfs.Node) (proteins, peptides []int) {
	for _, n := range nodes {
		if n.Kind == dfs.Protein {
			proteins = append(proteins, n.Index)
		} else {
			peptides = append(peptides, n.Index)
		}
	}
	slices.Sort(proteins)
	slices.Sort(peptides)

	return proteins, peptides
}

// hasObservedEdge reports whether n touches at least one edge whose peptide
// endpoint is experimental.
func hasObservedEdge(g *core.Graph, n dfs.Node) bool {
	if n.Kind == dfs.Peptide {
		pep := &g.Peptides[n.Index]
		return pep.Experimental && len(pep.Proteins) > 0
	}
	for _, pep := range g.Proteins[n.Index].Peptides {
		if g.Peptides[pep].Experimental {
			return true
		}
	}

	return false
}
