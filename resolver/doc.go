// Package resolver runs protein inference for evidence sources against one
// theoretical database and accumulates a RunResult per run.
//
// Pipeline of a run:
//
//	Database.Snapshot → builder.Include → partition.Compute → reindex.Build
//	→ classify.Compute/Apply → stats.Compute/ObservedCoverage
//
// Every run works on its own snapshot of the database, so no traversal
// marker or classification ever leaks between runs and ResolveBatch can run
// sources in parallel. Results are appended in call order (input order for
// ResolveBatch) until Clear.
//
// Calling a run before SetProteinData is not an error: the run resolves
// against an empty database and yields a result without proteins or groups.
// Validate reports that situation explicitly for callers that want it.
package resolver
