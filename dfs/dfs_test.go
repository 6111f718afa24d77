package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/dfs"
)

// triangle builds A–{P1,P2}, B–{P2,P3}, C–{P1,P3}: a 6-cycle through shared peptides,
// plus an isolated protein D with peptide P4.
func triangle() *core.Graph {
	return core.NewDatabase([]core.ProteinEntry{
		{Record: core.Record{Accession: "A"}, Peptides: []string{"P1", "P2"}},
		{Record: core.Record{Accession: "B"}, Peptides: []string{"P2", "P3"}},
		{Record: core.Record{Accession: "C"}, Peptides: []string{"P1", "P3"}},
		{Record: core.Record{Accession: "D"}, Peptides: []string{"P4"}},
	}).Snapshot()
}

func TestWalk_NilGraph(t *testing.T) {
	res, err := dfs.Walk(nil, dfs.ProteinNode(0), nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestWalk_StartNotFound(t *testing.T) {
	g := triangle()
	_, err := dfs.Walk(g, dfs.ProteinNode(9), nil)
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
	_, err = dfs.Walk(g, dfs.PeptideNode(-1), nil)
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
	_, err = dfs.Walk(g, dfs.Node{Kind: 7}, nil)
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
}

func TestWalk_VisitedMismatch(t *testing.T) {
	g := triangle()
	_, err := dfs.Walk(g, dfs.ProteinNode(0), dfs.NewVisited(core.NewGraph()))
	assert.ErrorIs(t, err, dfs.ErrVisitedMismatch)
}

func TestWalk_CycleVisitsEachNodeOnce(t *testing.T) {
	g := triangle()
	order, err := dfs.Walk(g, dfs.ProteinNode(0), nil)
	require.NoError(t, err)

	assert.Len(t, order, 6)
	seen := map[dfs.Node]int{}
	for _, n := range order {
		seen[n]++
	}
	for n, c := range seen {
		assert.Equal(t, 1, c, "%v", n)
	}
	assert.NotContains(t, seen, dfs.ProteinNode(3))
	assert.Equal(t, dfs.ProteinNode(0), order[0])
	assert.Equal(t, dfs.PeptideNode(0), order[1], "lowest index first")
}

func TestWalk_SharedVisitedPartitions(t *testing.T) {
	g := triangle()
	visited := dfs.NewVisited(g)

	first, err := dfs.Walk(g, dfs.ProteinNode(0), visited)
	require.NoError(t, err)
	assert.Len(t, first, 6)

	again, err := dfs.Walk(g, dfs.PeptideNode(2), visited)
	require.NoError(t, err)
	assert.Empty(t, again, "already covered")

	rest, err := dfs.Walk(g, dfs.ProteinNode(3), visited)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Node{dfs.ProteinNode(3), dfs.PeptideNode(3)}, rest)

	visited.Reset()
	assert.False(t, visited.Seen(dfs.ProteinNode(0)))
}

func TestWalk_FilterEdge(t *testing.T) {
	g := triangle()
	// only edges touching P1 (index 0)
	onlyP1 := dfs.WithFilterEdge(func(_, peptide int) bool { return peptide == 0 })

	order, err := dfs.Walk(g, dfs.ProteinNode(0), nil, onlyP1)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Node{dfs.ProteinNode(0), dfs.PeptideNode(0), dfs.ProteinNode(2)}, order)
}

func TestWalk_OnVisitError(t *testing.T) {
	g := triangle()
	boom := errors.New("boom")
	calls := 0
	order, err := dfs.Walk(g, dfs.ProteinNode(0), nil, dfs.WithOnVisit(func(dfs.Node) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Len(t, order, 2)
}
