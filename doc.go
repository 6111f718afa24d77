// Package proteinresolver infers which proteins are supported by a set of
// peptide identifications.
//
// A run joins a protein database with the peptide hits of one experiment into
// a bipartite protein–peptide graph, then:
//
//	builder/    attaches observed peptides to the graph, inserting unknown ones
//	partition/  splits the graph into coarse groups (all peptides) and
//	             fine groups (observed peptides only)
//	reindex/    compacts the nodes that belong to a fine group
//	classify/   labels proteins primary or secondary and finds
//	             indistinguishable ones
//	stats/      target/decoy counts and median intensity per fine group
//
// Package resolver drives the pipeline for identification lists and consensus
// maps and keeps the results of every run. Package core holds the database
// and graph types; package dfs the traversal everything above is built on.
//
// Input files are read by package dataset, reports written by package report,
// and cmd/protresolver wires them into a command line tool.
package proteinresolver
