package reindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/partition"
	"github.com/katalvlaran/proteinresolver/reindex"
)

func resolved(t *testing.T, entries []core.ProteinEntry, observed ...string) (*core.Graph, *partition.Partition) {
	t.Helper()
	g := core.NewDatabase(entries).Snapshot()
	for _, seq := range observed {
		require.NoError(t, g.Observe(g.FindPeptide(seq), 1, "", core.NoProvenance))
	}
	part, err := partition.Compute(g)
	require.NoError(t, err)

	return g, part
}

func TestBuild_Scenario(t *testing.T) {
	g, part := resolved(t, []core.ProteinEntry{
		{Record: core.Record{Accession: "A"}, Peptides: []string{"PEP1", "PEP2"}},
		{Record: core.Record{Accession: "B"}, Peptides: []string{"PEP2", "PEP3"}},
	}, "PEP1", "PEP2")

	tbl := reindex.Build(g, part.Fine)
	assert.Equal(t, []int{0, 1}, tbl.Proteins)
	assert.Equal(t, []int{0, 1, 2}, tbl.Peptides, "PEP3 gets the sentinel 2")
	assert.Equal(t, 2, tbl.PeptideSentinel())

	idx, ok := tbl.Peptide(g.FindPeptide("PEP3"))
	assert.False(t, ok)
	assert.Equal(t, 2, idx)
}

func TestBuild_FollowsFineOrder(t *testing.T) {
	g, part := resolved(t, []core.ProteinEntry{
		{Record: core.Record{Accession: "X"}, Peptides: []string{"Q9"}},
		{Record: core.Record{Accession: "Y"}, Peptides: []string{"Q1"}},
		{Record: core.Record{Accession: "Z"}, Peptides: []string{"Q5"}},
	}, "Q9", "Q1")

	tbl := reindex.Build(g, part.Fine)
	// fine groups: {X, Q9}, {Y, Q1}; Z excluded
	assert.Equal(t, []int{0, 1}, tbl.ProteinOrder)
	assert.Equal(t, []int{0, 1, 2}, tbl.Proteins)
	assert.Equal(t, []int{g.FindPeptide("Q9"), g.FindPeptide("Q1")}, tbl.PeptideOrder)

	_, ok := tbl.Protein(2)
	assert.False(t, ok)
	_, ok = tbl.Protein(99)
	assert.False(t, ok)
	_, ok = tbl.Peptide(-1)
	assert.False(t, ok)
}

func TestBuild_ExclusionProperty(t *testing.T) {
	g, part := resolved(t, []core.ProteinEntry{
		{Record: core.Record{Accession: "A"}, Peptides: []string{"P1", "P2"}},
		{Record: core.Record{Accession: "B"}, Peptides: []string{"P2"}},
		{Record: core.Record{Accession: "C"}, Peptides: []string{"P3"}},
	}, "P1")

	tbl := reindex.Build(g, part.Fine)
	for old, p := range g.Proteins {
		observed := p.FineGroup != core.NoGroup
		idx, ok := tbl.Protein(old)
		assert.Equal(t, observed, ok, p.Record.Accession)
		if ok {
			assert.Less(t, idx, tbl.ProteinSentinel())
		} else {
			assert.Equal(t, tbl.ProteinSentinel(), idx)
		}
	}
	assert.Equal(t, 1, tbl.ProteinSentinel(), "only A is reachable through P1")
}

func TestBuild_NilAndEmpty(t *testing.T) {
	tbl := reindex.Build(nil, nil)
	assert.Empty(t, tbl.Proteins)

	g := core.NewDatabase([]core.ProteinEntry{
		{Record: core.Record{Accession: "A"}, Peptides: []string{"P1"}},
	}).Snapshot()
	tbl = reindex.Build(g, nil)
	assert.Equal(t, []int{0}, tbl.Proteins, "sentinel is 0 when nothing is reachable")
	assert.Equal(t, []int{0}, tbl.Peptides)
}
