// Package dfs implements the guarded depth-first traversal over the bipartite
// protein–peptide graph of package core.
//
// What:
//
//   - Walk(g, start, visited, opts...) explores every node reachable from start,
//     alternating between protein and peptide nodes, and returns them in
//     discovery order.
//   - Visited is an explicit per-phase marker set. It is passed in rather than
//     stored on the nodes, so one phase never leaks into the next and two runs
//     over separate graphs never share state.
//   - A node is marked when it is pushed, so it is pushed at most once per
//     phase even though shared peptides create cycles.
//
// Options:
//
//   - WithFilterEdge(fn)  only cross protein–peptide edges for which fn is true.
//   - WithOnVisit(fn)     pre-order hook; an error aborts the walk.
//
// Complexity:
//
//   - Walk: Time O(V' + E') over the reached subgraph, Memory O(V') for the stack.
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil.
//   - ErrStartNotFound   start node index out of range.
//   - ErrVisitedMismatch marker set sized for another graph.
//   - hook errors        wrapped from OnVisit.
package dfs
