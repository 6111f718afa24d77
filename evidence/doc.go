// Package evidence models the identification inputs consumed by the resolver
// and the lookup helpers that map a resolved peptide back to the record it
// was derived from.
//
// What:
//
//   - Identification / PeptideHit: a list-of-identifications source, one record
//     per spectrum with ranked peptide-hit candidates.
//   - ConsensusMap / ConsensusFeature: a feature source, each feature carrying
//     identifications and an intensity.
//   - Observation: the flattened, source-independent form consumed by
//     package builder. Flattening records positional Provenance only.
//   - IdentificationOf, HitOf, ConsensusIdentificationOf, ConsensusHitOf:
//     reverse lookups used by reporting.
//
// Errors:
//
//   - ErrNotObserved           the peptide was never matched by evidence.
//   - ErrWrongSource           provenance belongs to the other source kind.
//   - ErrProvenanceOutOfRange  provenance does not fit the given source.
package evidence
