package resolver

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/proteinresolver/builder"
	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/evidence"
	"github.com/katalvlaran/proteinresolver/partition"
	"github.com/katalvlaran/proteinresolver/reindex"
)

// InputKind tells which evidence source a run consumed.
type InputKind int

const (
	// InputIdentifications is a list of identification records.
	InputIdentifications InputKind = iota
	// InputConsensus is a consensus feature collection.
	InputConsensus
)

// String returns the label used in reports.
func (k InputKind) String() string {
	if k == InputConsensus {
		return "consensus"
	}

	return "identifications"
}

// RunResult is the self-contained outcome of one run.
type RunResult struct {
	Identifier string
	Kind       InputKind

	// Graph holds the run's protein and peptide nodes.
	Graph *core.Graph
	// Coarse and Fine are the two partition levels.
	Coarse []partition.CoarseGroup
	Fine   []partition.FineGroup
	// Table maps node indices to and from the compacted reachable subset.
	Table reindex.Table
	// Summary reports what happened to the evidence.
	Summary builder.Summary

	// Exactly one of Identifications and Consensus is set, matching Kind.
	Identifications []evidence.Identification
	Consensus       *evidence.ConsensusMap
}

// Identification returns the identification record peptide pep was derived from.
func (r *RunResult) Identification(pep int) (*evidence.Identification, error) {
	node, err := r.peptide(pep)
	if err != nil {
		return nil, err
	}
	if r.Kind == InputConsensus {
		return evidence.ConsensusIdentificationOf(r.Consensus, node)
	}

	return evidence.IdentificationOf(r.Identifications, node)
}

// Hit returns the peptide hit peptide pep was derived from.
func (r *RunResult) Hit(pep int) (*evidence.PeptideHit, error) {
	node, err := r.peptide(pep)
	if err != nil {
		return nil, err
	}
	if r.Kind == InputConsensus {
		return evidence.ConsensusHitOf(r.Consensus, node)
	}

	return evidence.HitOf(r.Identifications, node)
}

// FineProteins returns the protein nodes of fine group i.
func (r *RunResult) FineProteins(i int) []core.ProteinNode {
	if i < 0 || i >= len(r.Fine) {
		return nil
	}
	out := make([]core.ProteinNode, 0, len(r.Fine[i].Proteins))
	for _, p := range r.Fine[i].Proteins {
		out = append(out, r.Graph.Proteins[p])
	}

	return out
}

func (r *RunResult) peptide(i int) (core.PeptideNode, error) {
	if r.Graph == nil || i < 0 || i >= len(r.Graph.Peptides) {
		return core.PeptideNode{}, errors.Wrapf(core.ErrPeptideNotFound, "index %d", i)
	}

	return r.Graph.Peptides[i], nil
}
