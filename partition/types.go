package partition

import (
	"github.com/pkg/errors"
)

// ErrGraphNil is returned when Compute receives a nil graph.
var ErrGraphNil = errors.New("partition: graph is nil")

// CoarseGroup is a connected component over all edges.
type CoarseGroup struct {
	Index    int
	Proteins []int
	Peptides []int
	// Fine lists the indices of the fine groups nested in this group.
	Fine []int
}

// FineGroup is a connected component over observed edges.
type FineGroup struct {
	Index    int
	Coarse   int
	Proteins []int
	Peptides []int

	// Target, Decoy and TargetPlusDecoy count member proteins by record flag.
	// They are filled by package stats.
	Target          int
	Decoy           int
	TargetPlusDecoy int
	// Intensity is the median of the member peptide intensities.
	Intensity float64
}

// Partition holds both levels.
type Partition struct {
	Coarse []CoarseGroup
	Fine   []FineGroup
}
