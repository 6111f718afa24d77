package resolver_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/evidence"
	"github.com/katalvlaran/proteinresolver/resolver"
)

var quiet = resolver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func scenarioEntries() []core.ProteinEntry {
	return []core.ProteinEntry{
		{Record: core.Record{Accession: "ProteinA"}, Peptides: []string{"PEP1", "PEP2"}},
		{Record: core.Record{Accession: "ProteinB", Decoy: true}, Peptides: []string{"PEP2", "PEP3"}},
	}
}

func scenarioIDs() []evidence.Identification {
	return []evidence.Identification{
		{Identifier: "run-1", Intensity: 10, Hits: []evidence.PeptideHit{{Sequence: "PEP1", Score: 0.99}}},
		{Intensity: 20, Hits: []evidence.PeptideHit{{Sequence: "PEP2", Score: 0.5}}},
	}
}

func newResolver(opts ...resolver.Option) *resolver.Resolver {
	r := resolver.New(append([]resolver.Option{quiet}, opts...)...)
	r.SetProteinData(scenarioEntries())

	return r
}

func TestResolveIdentifications_Scenario(t *testing.T) {
	r := newResolver()
	res, err := r.ResolveIdentifications(scenarioIDs())
	require.NoError(t, err)

	assert.Equal(t, "run-1", res.Identifier)
	assert.Equal(t, resolver.InputIdentifications, res.Kind)

	// one coarse group with everything
	require.Len(t, res.Coarse, 1)
	assert.Equal(t, []int{0, 1}, res.Coarse[0].Proteins)
	assert.Len(t, res.Coarse[0].Peptides, 3)

	// one fine group without PEP3
	require.Len(t, res.Fine, 1)
	fine := res.Fine[0]
	assert.Equal(t, []int{0, 1}, fine.Proteins)
	var seqs []string
	for _, p := range fine.Peptides {
		seqs = append(seqs, res.Graph.Peptides[p].Sequence)
	}
	assert.Equal(t, []string{"PEP1", "PEP2"}, seqs)
	pep3 := res.Graph.FindPeptide("PEP3")
	assert.Equal(t, core.NoGroup, res.Graph.Peptides[pep3].FineGroup)
	_, ok := res.Table.Peptide(pep3)
	assert.False(t, ok)

	// classification and statistics
	assert.Equal(t, core.Primary, res.Graph.Proteins[0].Type)
	assert.Equal(t, core.Secondary, res.Graph.Proteins[1].Type)
	assert.Equal(t, 15.0, fine.Intensity)
	assert.Equal(t, 1, fine.Target)
	assert.Equal(t, 1, fine.Decoy)
	assert.Equal(t, 2, fine.TargetPlusDecoy)

	// lookups
	hit, err := res.Hit(res.Graph.FindPeptide("PEP1"))
	require.NoError(t, err)
	assert.Equal(t, 0.99, hit.Score)
	id, err := res.Identification(res.Graph.FindPeptide("PEP2"))
	require.NoError(t, err)
	assert.Equal(t, 20.0, id.Intensity)
	_, err = res.Hit(pep3)
	assert.ErrorIs(t, err, evidence.ErrNotObserved)
	_, err = res.Hit(42)
	assert.ErrorIs(t, err, core.ErrPeptideNotFound)

	assert.Len(t, res.FineProteins(0), 2)
	assert.Nil(t, res.FineProteins(3))
}

func TestResolveConsensus(t *testing.T) {
	r := newResolver()
	cm := &evidence.ConsensusMap{Features: []evidence.ConsensusFeature{
		{Intensity: 10, Identifications: []evidence.Identification{{Hits: []evidence.PeptideHit{{Sequence: "PEP1"}}}}},
		{Intensity: 30, Identifications: []evidence.Identification{{Hits: []evidence.PeptideHit{{Sequence: "PEP3", Score: 2}}}}},
	}}
	res, err := r.ResolveConsensus(cm)
	require.NoError(t, err)

	assert.Equal(t, resolver.InputConsensus, res.Kind)
	_, err = uuid.Parse(res.Identifier)
	assert.NoError(t, err, "generated identifier")

	// PEP1 and PEP3 are observed but not PEP2: two fine groups in one coarse group
	require.Len(t, res.Coarse, 1)
	require.Len(t, res.Fine, 2)
	assert.Equal(t, []int{0, 1}, res.Coarse[0].Fine)
	assert.Equal(t, core.Primary, res.Graph.Proteins[0].Type)
	assert.Equal(t, core.Primary, res.Graph.Proteins[1].Type)
	assert.Equal(t, 10.0, res.Fine[0].Intensity)
	assert.Equal(t, 30.0, res.Fine[1].Intensity)

	hit, err := res.Hit(res.Graph.FindPeptide("PEP3"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, hit.Score)
}

func TestResolve_WithoutDatabase(t *testing.T) {
	r := resolver.New(quiet)
	assert.ErrorIs(t, r.Validate(), resolver.ErrNoDatabase)

	res, err := r.ResolveIdentifications(scenarioIDs())
	require.NoError(t, err)
	assert.Empty(t, res.Graph.Proteins)
	assert.Empty(t, res.Coarse)
	assert.Empty(t, res.Fine)
	assert.Equal(t, 2, res.Summary.Dropped)

	res, err = r.ResolveConsensus(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Fine)
}

func TestResults_AccumulateAndClear(t *testing.T) {
	r := newResolver()
	require.NoError(t, r.Validate())

	_, err := r.ResolveIdentifications(scenarioIDs())
	require.NoError(t, err)
	_, err = r.ResolveIdentifications(scenarioIDs()[1:])
	require.NoError(t, err)

	results := r.Results()
	require.Len(t, results, 2)
	// the second run does not see the first run's observations
	pep1 := results[1].Graph.FindPeptide("PEP1")
	assert.False(t, results[1].Graph.Peptides[pep1].Experimental)
	assert.True(t, results[0].Graph.Peptides[pep1].Experimental)
	// only PEP2 was seen, which A and B share
	assert.Equal(t, core.SecondaryIndistinguishable, results[1].Graph.Proteins[0].Type)
	assert.Equal(t, []int{1}, results[1].Graph.Proteins[0].Indistinguishable)

	r.Clear()
	assert.Empty(t, r.Results())
	require.NoError(t, r.Validate(), "protein data survives Clear")
}

func TestResolve_AccessionsDoNotJoinDatabaseComponents(t *testing.T) {
	r := resolver.New(quiet)
	r.SetProteinData([]core.ProteinEntry{
		{Record: core.Record{Accession: "A"}, Peptides: []string{"PEP1"}},
		{Record: core.Record{Accession: "C"}, Peptides: []string{"PEP7"}},
	})
	res, err := r.ResolveIdentifications([]evidence.Identification{
		{Hits: []evidence.PeptideHit{{Sequence: "PEP1", Accessions: []string{"A"}}}},
		{Hits: []evidence.PeptideHit{{Sequence: "PEP7", Accessions: []string{"A", "C"}}}},
	})
	require.NoError(t, err)

	assert.Len(t, res.Coarse, 2)
	assert.Len(t, res.Fine, 2)
	assert.Equal(t, []int{1}, res.Graph.Peptides[res.Graph.FindPeptide("PEP7")].Proteins)
	assert.Equal(t, core.Primary, res.Graph.Proteins[0].Type)
	assert.Equal(t, core.Primary, res.Graph.Proteins[1].Type)
}

func TestResolve_TopHitByDefault(t *testing.T) {
	entries := []core.ProteinEntry{
		{Record: core.Record{Accession: "A"}, Peptides: []string{"PEP1"}},
		{Record: core.Record{Accession: "C"}, Peptides: []string{"PEP7"}},
	}
	ids := []evidence.Identification{{Intensity: 8, Hits: []evidence.PeptideHit{
		{Sequence: "PEP7", Rank: 2},
		{Sequence: "PEP1", Rank: 1},
	}}}

	r := resolver.New(quiet)
	r.SetProteinData(entries)
	res, err := r.ResolveIdentifications(ids)
	require.NoError(t, err)

	require.Len(t, res.Fine, 1)
	assert.False(t, res.Graph.Peptides[res.Graph.FindPeptide("PEP7")].Experimental)
	assert.Equal(t, core.Primary, res.Graph.Proteins[0].Type)
	assert.Equal(t, core.Unclassified, res.Graph.Proteins[1].Type)
	hit, err := res.Hit(res.Graph.FindPeptide("PEP1"))
	require.NoError(t, err)
	assert.Equal(t, 1, hit.Rank)

	r = resolver.New(quiet, resolver.WithAllHits())
	r.SetProteinData(entries)
	res, err = r.ResolveIdentifications(ids)
	require.NoError(t, err)

	require.Len(t, res.Fine, 2)
	pep7 := res.Graph.Peptides[res.Graph.FindPeptide("PEP7")]
	assert.True(t, pep7.Experimental)
	assert.Equal(t, 8.0, pep7.Intensity)
	assert.Equal(t, core.Primary, res.Graph.Proteins[1].Type)
}

func TestResolveBatch_OrderAndIsolation(t *testing.T) {
	r := newResolver(resolver.WithParallel(4), resolver.WithBatchInsert(), resolver.WithTopHitOnly())

	var sources []resolver.Source
	for i := 0; i < 8; i++ {
		seq := "PEP1"
		if i%2 == 1 {
			seq = "PEP3"
		}
		sources = append(sources, resolver.Source{Identifications: []evidence.Identification{
			{Identifier: string(rune('a' + i)), Intensity: float64(i), Hits: []evidence.PeptideHit{{Sequence: seq}}},
		}})
	}
	out, err := r.ResolveBatch(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, out, 8)

	for i, res := range out {
		assert.Equal(t, string(rune('a'+i)), res.Identifier)
		require.Len(t, res.Fine, 1)
		experimental := 0
		for _, p := range res.Graph.Peptides {
			if p.Experimental {
				experimental++
			}
		}
		assert.Equal(t, 1, experimental, "run %d", i)
	}
	assert.Len(t, r.Results(), 8)
}

func TestResolveBatch_Canceled(t *testing.T) {
	r := newResolver()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ResolveBatch(ctx, []resolver.Source{{Identifications: scenarioIDs()}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.Results())
}

func TestWithLogger_NilPanics(t *testing.T) {
	assert.Panics(t, func() { resolver.WithLogger(nil) })
}

func TestInputKind_String(t *testing.T) {
	assert.Equal(t, "identifications", resolver.InputIdentifications.String())
	assert.Equal(t, "consensus", resolver.InputConsensus.String())
}
