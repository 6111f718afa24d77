// Package core defines the protein–peptide evidence graph used by every other
// package of proteinresolver: sequence-database records, protein and peptide
// nodes, the immutable theoretical Database and the per-run Graph snapshot.
//
// What:
//
//   - Database is built once from theoretical ProteinEntry tuples (record, weight,
//     coverage, digested peptide sequences). Peptide sequences are deduplicated
//     and kept sorted so a sequence lookup is a binary search.
//   - Graph is a mutable, run-scoped deep copy of a Database. Nodes live in
//     contiguous slices and edges are sorted index sets on both endpoints,
//     so no node ever holds a live reference to another.
//   - ProteinType is the identifiability label assigned by package classify.
//
// Why:
//
//   - Runs never share mutable state: each evidence source is resolved on its
//     own Snapshot, so runs can be executed in parallel without locks.
//   - Index-addressed edges survive reindexing and cloning without dangling.
//
// Complexity:
//
//   - NewDatabase:    O(P·k + S log S), P proteins, k peptides per protein, S unique sequences.
//   - Snapshot/Clone: O(P + S + E).
//   - FindPeptide:    O(|seq| · log S).
//   - InsertPeptide:  O(S + E) because indices after the insertion point shift.
//   - InsertPeptides: O((S+n) log (S+n) + E) for a batch of n sequences.
//   - Connect:        O(deg) for the two sorted inserts.
//
// Errors:
//
//   - ErrProteinNotFound   protein index or accession unknown.
//   - ErrPeptideNotFound   peptide index out of range.
//   - ErrEmptySequence     sequence empty after normalisation.
package core
