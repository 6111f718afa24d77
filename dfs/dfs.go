package dfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/proteinresolver/core"
)

// walker encapsulates state during one Walk.
type walker struct {
	graph   *core.Graph
	opts    Options
	visited *Visited
	stack   []Node
	order   []Node
}

// Walk performs a depth-first traversal of g from start and returns the
// reached nodes in visit order. Nodes already marked in visited are treated
// as unreachable; start itself must be unmarked, otherwise nothing is
// returned. visited is updated in place so consecutive walks over the same
// set partition the graph.
func Walk(g *core.Graph, start Node, visited *Visited, opts ...Option) ([]Node, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !exists(g, start) {
		return nil, errors.Wrapf(ErrStartNotFound, "kind %d index %d", start.Kind, start.Index)
	}
	if visited == nil {
		visited = NewVisited(g)
	}
	if !visited.fits(g) {
		return nil, ErrVisitedMismatch
	}

	// 2. Apply options
	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	if visited.Seen(start) {
		return nil, nil
	}
	w := &walker{graph: g, opts: wopts, visited: visited}
	w.push(start)
	if err := w.run(); err != nil {
		return w.order, err
	}

	return w.order, nil
}

// run drains the stack. Neighbours are pushed in reverse so that the lowest
// index is visited first.
func (w *walker) run() error {
	var n Node
	for len(w.stack) > 0 {
		n = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.order = append(w.order, n)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(n); err != nil {
				return errors.Wrapf(err, "dfs: OnVisit hook for %v", n)
			}
		}

		if n.Kind == Protein {
			peps := w.graph.Proteins[n.Index].Peptides
			for i := len(peps) - 1; i >= 0; i-- {
				if w.allowed(n.Index, peps[i]) {
					w.push(PeptideNode(peps[i]))
				}
			}
			continue
		}
		prots := w.graph.Peptides[n.Index].Proteins
		for i := len(prots) - 1; i >= 0; i-- {
			if w.allowed(prots[i], n.Index) {
				w.push(ProteinNode(prots[i]))
			}
		}
	}

	return nil
}

// push marks n and schedules it unless it was marked before.
func (w *walker) push(n Node) {
	if w.visited.Seen(n) {
		return
	}
	w.visited.Mark(n)
	w.stack = append(w.stack, n)
}

func (w *walker) allowed(protein, peptide int) bool {
	return w.opts.FilterEdge == nil || w.opts.FilterEdge(protein, peptide)
}

func exists(g *core.Graph, n Node) bool {
	switch n.Kind {
	case Protein:
		return n.Index >= 0 && n.Index < len(g.Proteins)
	case Peptide:
		return n.Index >= 0 && n.Index < len(g.Peptides)
	default:
		return false
	}
}
