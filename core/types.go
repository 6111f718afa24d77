// Package core declares Record, ProteinEntry, ProteinNode, PeptideNode,
// Provenance, ProteinType and the sentinel errors of the package.
package core

import (
	"github.com/pkg/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrProteinNotFound indicates an operation referenced an unknown protein.
	ErrProteinNotFound = errors.New("core: protein not found")

	// ErrPeptideNotFound indicates an operation referenced an unknown peptide.
	ErrPeptideNotFound = errors.New("core: peptide not found")

	// ErrEmptySequence indicates a sequence that is empty after normalisation.
	ErrEmptySequence = errors.New("core: empty sequence")
)

// NoGroup marks a node that has not been assigned to a coarse or fine group.
const NoGroup = -1

// Record is a sequence-database entry. Decoy is supplied by the database
// provider and is never computed here.
type Record struct {
	Accession   string `yaml:"accession" json:"accession"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Sequence    string `yaml:"sequence,omitempty" json:"sequence,omitempty"`
	Decoy       bool   `yaml:"decoy,omitempty" json:"decoy,omitempty"`
}

// ProteinEntry is one theoretical input tuple: the database record, its
// monoisotopic weight, its sequence coverage in percent and the peptide
// sequences its digestion produces.
type ProteinEntry struct {
	Record   Record   `yaml:"record" json:"record"`
	Weight   float64  `yaml:"weight,omitempty" json:"weight,omitempty"`
	Coverage float64  `yaml:"coverage,omitempty" json:"coverage,omitempty"`
	Peptides []string `yaml:"peptides" json:"peptides"`
}

// ProteinType is the identifiability label of a protein.
type ProteinType int

const (
	// Unclassified proteins were never reached through observed evidence.
	Unclassified ProteinType = iota
	// Primary proteins own at least one observed peptide no other reachable protein has.
	Primary
	// Secondary proteins are reachable but own no unique observed peptide.
	Secondary
	// PrimaryIndistinguishable proteins share their identifying peptide set with
	// another protein and at least one member of that set is primary.
	PrimaryIndistinguishable
	// SecondaryIndistinguishable proteins share their identifying peptide set with
	// another protein and no member of that set is primary.
	SecondaryIndistinguishable
)

// String returns the lower-case label used in reports.
func (t ProteinType) String() string {
	switch t {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case PrimaryIndistinguishable:
		return "primary_indistinguishable"
	case SecondaryIndistinguishable:
		return "secondary_indistinguishable"
	default:
		return "unclassified"
	}
}

// IsPrimary reports whether t is Primary or PrimaryIndistinguishable.
func (t ProteinType) IsPrimary() bool {
	return t == Primary || t == PrimaryIndistinguishable
}

// Provenance locates the evidence a peptide was derived from by position.
// Feature is NoGroup for identification-list input.
type Provenance struct {
	Feature        int
	Identification int
	Hit            int
}

// NoProvenance is the provenance of a theoretical-only peptide.
var NoProvenance = Provenance{Feature: -1, Identification: -1, Hit: -1}

// ProteinNode is a protein of the evidence graph.
type ProteinNode struct {
	// Record is owned by the node; snapshots copy it.
	Record Record
	// Weight is the monoisotopic weight in Dalton.
	Weight float64
	// Coverage is the theoretical sequence coverage in percent, as supplied.
	Coverage float64
	// ObservedCoverage is the percentage of residues covered by observed peptides.
	ObservedCoverage float64
	// Type is assigned once per run by package classify.
	Type ProteinType
	// Peptides holds sorted indices into Graph.Peptides.
	Peptides []int
	// Indistinguishable holds sorted indices of proteins with the same
	// identifying peptide set, excluding the protein itself.
	Indistinguishable []int
	// ExperimentalPeptides counts adjacent peptides that were observed.
	ExperimentalPeptides int
	// CoarseGroup and FineGroup are NoGroup until partitioning.
	CoarseGroup int
	FineGroup   int
}

// PeptideNode is a peptide of the evidence graph, unique by Sequence.
type PeptideNode struct {
	Sequence string
	// Experimental is set once the peptide is matched by an observation.
	Experimental bool
	// Intensity is the summed intensity of all observations of the peptide.
	Intensity float64
	// Observations counts how many evidence hits matched the peptide.
	Observations int
	// Origin is the origin label of the first observation.
	Origin string
	// Source points to the first observation in its evidence source.
	Source Provenance
	// Proteins holds sorted indices into Graph.Proteins.
	Proteins []int
	// CoarseGroup and FineGroup are NoGroup until partitioning.
	CoarseGroup int
	FineGroup   int
}
