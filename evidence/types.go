package evidence

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/proteinresolver/core"
)

var (
	// ErrNotObserved indicates a lookup for a theoretical-only peptide.
	ErrNotObserved = errors.New("evidence: peptide was not observed")

	// ErrWrongSource indicates a lookup against the wrong kind of source.
	ErrWrongSource = errors.New("evidence: provenance belongs to another source kind")

	// ErrProvenanceOutOfRange indicates provenance indices outside the source.
	ErrProvenanceOutOfRange = errors.New("evidence: provenance out of range")
)

// PeptideHit is one peptide candidate of an identification.
type PeptideHit struct {
	Sequence   string   `yaml:"sequence" json:"sequence"`
	Score      float64  `yaml:"score,omitempty" json:"score,omitempty"`
	Rank       int      `yaml:"rank,omitempty" json:"rank,omitempty"`
	Accessions []string `yaml:"accessions,omitempty" json:"accessions,omitempty"`
	// TargetDecoy is the search engine annotation: "target", "decoy" or "target+decoy".
	TargetDecoy string `yaml:"target_decoy,omitempty" json:"target_decoy,omitempty"`
}

// Identification is one spectrum identification with its candidate hits.
type Identification struct {
	Identifier string       `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	Origin     string       `yaml:"origin,omitempty" json:"origin,omitempty"`
	Intensity  float64      `yaml:"intensity,omitempty" json:"intensity,omitempty"`
	Hits       []PeptideHit `yaml:"hits" json:"hits"`
}

// ConsensusFeature is a quantified feature annotated with identifications.
type ConsensusFeature struct {
	Intensity       float64          `yaml:"intensity" json:"intensity"`
	Identifications []Identification `yaml:"identifications" json:"identifications"`
}

// ConsensusMap is a collection of consensus features.
type ConsensusMap struct {
	Identifier string             `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	Features   []ConsensusFeature `yaml:"features" json:"features"`
}

// Observation is one observed peptide-to-protein hit in source-independent form.
type Observation struct {
	Sequence   string
	Accessions []string
	Intensity  float64
	Origin     string
	Source     core.Provenance
}
