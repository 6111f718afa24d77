// File: database.go
// Role: Immutable theoretical node set shared by all runs.
// Determinism:
//   - Proteins keep input order; peptides are sorted by sequence.
//   - Edge index sets are sorted ascending on both endpoints.
// Concurrency:
//   - A Database is never mutated after NewDatabase; Snapshot may be called
//     from many goroutines.

package core

import (
	"sort"
)

// Database is the theoretical protein/peptide node set loaded once before any
// run. Use Snapshot to obtain a mutable Graph for one run.
type Database struct {
	proteins    []ProteinNode
	peptides    []PeptideNode
	byAccession map[string]int
}

// NewDatabase builds the theoretical node set from entries.
//
// Behavior highlights:
//   - Peptide sequences are normalised with UnmodifiedSequence; empty results are dropped.
//   - Duplicate sequences, within or across entries, map to one node.
//   - A repeated accession keeps the first entry.
//   - A zero Weight is derived from Record.Sequence when one is present.
//
// Complexity: O(P·k + S log S).
func NewDatabase(entries []ProteinEntry) *Database {
	db := &Database{byAccession: make(map[string]int, len(entries))}

	// 1. Proteins in input order, collecting normalised sequences
	perProtein := make([][]string, 0, len(entries))
	unique := make(map[string]struct{})
	var (
		entry ProteinEntry
		raw   string
	)
	for _, entry = range entries {
		if _, dup := db.byAccession[entry.Record.Accession]; dup {
			continue
		}
		weight := entry.Weight
		if weight == 0 && entry.Record.Sequence != "" {
			weight = MonoisotopicWeight(entry.Record.Sequence)
		}
		db.byAccession[entry.Record.Accession] = len(db.proteins)
		db.proteins = append(db.proteins, ProteinNode{
			Record:      entry.Record,
			Weight:      weight,
			Coverage:    entry.Coverage,
			CoarseGroup: NoGroup,
			FineGroup:   NoGroup,
		})

		seqs := make([]string, 0, len(entry.Peptides))
		for _, raw = range entry.Peptides {
			seq := UnmodifiedSequence(raw)
			if seq == "" {
				continue
			}
			seqs = append(seqs, seq)
			unique[seq] = struct{}{}
		}
		perProtein = append(perProtein, seqs)
	}

	// 2. Sorted peptide nodes
	sorted := make([]string, 0, len(unique))
	for raw = range unique {
		sorted = append(sorted, raw)
	}
	sort.Strings(sorted)
	position := make(map[string]int, len(sorted))
	db.peptides = make([]PeptideNode, len(sorted))
	for i, seq := range sorted {
		position[seq] = i
		db.peptides[i] = newPeptideNode(seq)
	}

	// 3. Edges; proteins are visited in ascending order so peptide sides stay sorted
	for p, seqs := range perProtein {
		for _, raw = range seqs {
			pep := position[raw]
			db.proteins[p].Peptides = insertSorted(db.proteins[p].Peptides, pep)
			db.peptides[pep].Proteins = insertSorted(db.peptides[pep].Proteins, p)
		}
	}

	return db
}

// Len returns the number of protein and peptide nodes.
func (db *Database) Len() (proteins, peptides int) {
	if db == nil {
		return 0, 0
	}

	return len(db.proteins), len(db.peptides)
}

// ProteinIndex returns the index of the protein with the given accession.
func (db *Database) ProteinIndex(accession string) (int, bool) {
	if db == nil {
		return 0, false
	}
	idx, ok := db.byAccession[accession]

	return idx, ok
}

// Snapshot returns a deep copy of the theoretical node set for one run.
// A nil Database yields an empty Graph.
//
// Complexity: O(P + S + E).
func (db *Database) Snapshot() *Graph {
	if db == nil {
		return NewGraph()
	}
	g := &Graph{
		Proteins:    make([]ProteinNode, len(db.proteins)),
		Peptides:    make([]PeptideNode, len(db.peptides)),
		byAccession: db.byAccession,
	}
	for i := range db.proteins {
		g.Proteins[i] = cloneProtein(db.proteins[i])
	}
	for i := range db.peptides {
		g.Peptides[i] = clonePeptide(db.peptides[i])
	}

	return g
}

func newPeptideNode(seq string) PeptideNode {
	return PeptideNode{
		Sequence:    seq,
		Source:      NoProvenance,
		CoarseGroup: NoGroup,
		FineGroup:   NoGroup,
	}
}
