// Package builder overlays observed evidence on a run's protein–peptide graph.
//
// The theoretical graph comes from core.Database.Snapshot. Include walks the
// flattened observations of one evidence source and, for each of them:
//
//   - normalises the sequence and binary-searches the sorted peptide nodes;
//   - when the sequence is unknown, resolves the hit's protein accessions and
//     inserts a new peptide node in sorted position, but only if at least one
//     accession names a known protein;
//   - marks the node experimental, adds the intensity and keeps the provenance
//     of the first observation;
//   - connects a newly inserted peptide to the known proteins named by the
//     hit's accessions. A database peptide keeps exactly its theoretical
//     edges; accessions never add edges to it.
//
// Guarantees:
//
//   - After Include every experimental peptide has at least one protein edge.
//   - Hits naming no known protein and no known sequence are dropped and
//     counted in Summary.Dropped; they are logged at debug level, never fatal.
//
// Options:
//
//   - WithLogger(l)     structured logger, default slog.Default().
//   - WithBatchInsert() collect unknown sequences first, append and sort once.
//
// Complexity:
//
//   - Sorted insertion: O(n·log S + m·(S+E)) for n observations, m inserted peptides.
//   - Batch insertion:  O(n·log S + (S+m) log (S+m) + E).
package builder
