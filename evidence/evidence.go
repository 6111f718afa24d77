package evidence

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/proteinresolver/core"
)

// FromIdentifications flattens an identification list into observations.
// Each hit inherits the intensity and origin of its identification. With
// topHitOnly, only the best-ranked hit of each identification is kept.
//
// Complexity: O(total hits).
func FromIdentifications(ids []Identification, topHitOnly bool) []Observation {
	out := make([]Observation, 0, len(ids))
	for i := range ids {
		out = appendHits(out, &ids[i], -1, i, ids[i].Intensity, topHitOnly)
	}

	return out
}

// FromConsensus flattens a consensus map into observations. Each hit takes
// the intensity of its feature.
//
// Complexity: O(total hits).
func FromConsensus(cm *ConsensusMap, topHitOnly bool) []Observation {
	if cm == nil {
		return nil
	}
	out := make([]Observation, 0, len(cm.Features))
	for f := range cm.Features {
		feature := &cm.Features[f]
		for i := range feature.Identifications {
			out = appendHits(out, &feature.Identifications[i], f, i, feature.Intensity, topHitOnly)
		}
	}

	return out
}

func appendHits(out []Observation, id *Identification, feature, idx int, intensity float64, topHitOnly bool) []Observation {
	if len(id.Hits) == 0 {
		return out
	}
	if topHitOnly {
		h := TopHit(id.Hits)

		return append(out, observation(id, feature, idx, h, intensity))
	}
	for h := range id.Hits {
		out = append(out, observation(id, feature, idx, h, intensity))
	}

	return out
}

func observation(id *Identification, feature, idx, hit int, intensity float64) Observation {
	return Observation{
		Sequence:   id.Hits[hit].Sequence,
		Accessions: id.Hits[hit].Accessions,
		Intensity:  intensity,
		Origin:     id.Origin,
		Source:     core.Provenance{Feature: feature, Identification: idx, Hit: hit},
	}
}

// TopHit returns the index of the hit with the lowest Rank; ties keep the
// earlier hit. It returns -1 for an empty slice.
func TopHit(hits []PeptideHit) int {
	best := -1
	for i := range hits {
		if best < 0 || hits[i].Rank < hits[best].Rank {
			best = i
		}
	}

	return best
}

// IdentificationOf returns the identification pep was derived from.
func IdentificationOf(ids []Identification, pep core.PeptideNode) (*Identification, error) {
	if !pep.Experimental {
		return nil, errors.Wrap(ErrNotObserved, pep.Sequence)
	}
	if pep.Source.Feature >= 0 {
		return nil, errors.Wrapf(ErrWrongSource, "%s comes from feature %d", pep.Sequence, pep.Source.Feature)
	}
	if pep.Source.Identification < 0 || pep.Source.Identification >= len(ids) {
		return nil, errors.Wrapf(ErrProvenanceOutOfRange, "identification %d of %d", pep.Source.Identification, len(ids))
	}

	return &ids[pep.Source.Identification], nil
}

// HitOf returns the peptide hit pep was derived from.
func HitOf(ids []Identification, pep core.PeptideNode) (*PeptideHit, error) {
	id, err := IdentificationOf(ids, pep)
	if err != nil {
		return nil, err
	}

	return hitIn(id, pep.Source.Hit)
}

// ConsensusIdentificationOf returns the identification pep was derived from.
func ConsensusIdentificationOf(cm *ConsensusMap, pep core.PeptideNode) (*Identification, error) {
	if !pep.Experimental {
		return nil, errors.Wrap(ErrNotObserved, pep.Sequence)
	}
	if pep.Source.Feature < 0 {
		return nil, errors.Wrapf(ErrWrongSource, "%s comes from an identification list", pep.Sequence)
	}
	if cm == nil || pep.Source.Feature >= len(cm.Features) {
		return nil, errors.Wrapf(ErrProvenanceOutOfRange, "feature %d", pep.Source.Feature)
	}
	feature := &cm.Features[pep.Source.Feature]
	if pep.Source.Identification < 0 || pep.Source.Identification >= len(feature.Identifications) {
		return nil, errors.Wrapf(ErrProvenanceOutOfRange, "identification %d of feature %d",
			pep.Source.Identification, pep.Source.Feature)
	}

	return &feature.Identifications[pep.Source.Identification], nil
}

// ConsensusHitOf returns the peptide hit pep was derived from.
func ConsensusHitOf(cm *ConsensusMap, pep core.PeptideNode) (*PeptideHit, error) {
	id, err := ConsensusIdentificationOf(cm, pep)
	if err != nil {
		return nil, err
	}

	return hitIn(id, pep.Source.Hit)
}

func hitIn(id *Identification, hit int) (*PeptideHit, error) {
	if hit < 0 || hit >= len(id.Hits) {
		return nil, errors.Wrapf(ErrProvenanceOutOfRange, "hit %d of %d", hit, len(id.Hits))
	}

	return &id.Hits[hit], nil
}
