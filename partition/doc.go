// Package partition computes the two nested partitions of a run's
// protein–peptide graph.
//
// What:
//
//   - Coarse groups ("ISD groups") are the maximal connected components over
//     every edge, theoretical or observed. They describe the full ambiguity
//     space reachable from any shared peptide.
//   - Fine groups ("MSD groups") are the maximal connected components over
//     edges whose peptide endpoint is experimental, computed inside each
//     coarse group. Every fine group therefore nests in exactly one coarse group.
//   - Nodes reachable only through theoretical edges belong to a coarse group
//     but to no fine group (FineGroup stays core.NoGroup).
//
// Ordering:
//
//   - Coarse groups are numbered in the order their seed is met while scanning
//     proteins, then peptides, in stored order.
//   - Fine groups are numbered coarse group by coarse group, seeds scanned in
//     member order (proteins ascending, then peptides ascending).
//   - Member lists are sorted ascending by node index.
//
// Complexity:
//
//   - Compute: Time O(V + E), Memory O(V).
package partition
