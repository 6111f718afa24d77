// Package dfs defines the node handle, the visited marker set and the
// functional options of Walk.
package dfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/proteinresolver/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Walk.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start node does not exist.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrVisitedMismatch indicates a Visited set built for a different graph size.
	ErrVisitedMismatch = errors.New("dfs: visited set does not match graph")
)

// Kind tells which side of the bipartite graph a Node lives on.
type Kind uint8

const (
	// Protein nodes index core.Graph.Proteins.
	Protein Kind = iota
	// Peptide nodes index core.Graph.Peptides.
	Peptide
)

// Node addresses one protein or peptide by index.
type Node struct {
	Kind  Kind
	Index int
}

// ProteinNode returns the handle of protein i.
func ProteinNode(i int) Node { return Node{Kind: Protein, Index: i} }

// PeptideNode returns the handle of peptide i.
func PeptideNode(i int) Node { return Node{Kind: Peptide, Index: i} }

// Visited marks nodes reached during one traversal phase.
type Visited struct {
	proteins []bool
	peptides []bool
}

// NewVisited returns an empty marker set sized for g.
func NewVisited(g *core.Graph) *Visited {
	if g == nil {
		return &Visited{}
	}

	return &Visited{
		proteins: make([]bool, len(g.Proteins)),
		peptides: make([]bool, len(g.Peptides)),
	}
}

// Seen reports whether n has been marked.
func (v *Visited) Seen(n Node) bool {
	if n.Kind == Protein {
		return v.proteins[n.Index]
	}

	return v.peptides[n.Index]
}

// Mark marks n as reached.
func (v *Visited) Mark(n Node) {
	if n.Kind == Protein {
		v.proteins[n.Index] = true
		return
	}
	v.peptides[n.Index] = true
}

// Reset clears every marker, keeping the allocation.
func (v *Visited) Reset() {
	clear(v.proteins)
	clear(v.peptides)
}

// fits reports whether v was sized for g.
func (v *Visited) fits(g *core.Graph) bool {
	return len(v.proteins) == len(g.Proteins) && len(v.peptides) == len(g.Peptides)
}

// Option configures optional behavior of Walk.
type Option func(*Options)

// Options holds configurable parameters for Walk.
type Options struct {
	// FilterEdge, if non-nil, is asked for every protein–peptide edge before
	// it is crossed. Return false to ignore that edge.
	FilterEdge func(protein, peptide int) bool

	// OnVisit, if non-nil, is invoked when a node is popped (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n Node) error
}

// DefaultOptions returns Options with no filter and no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithFilterEdge returns an Option that restricts the crossed edges.
func WithFilterEdge(fn func(protein, peptide int) bool) Option {
	return func(o *Options) {
		o.FilterEdge = fn
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(n Node) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
