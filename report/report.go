// Package report renders resolved runs for downstream consumers as
// tab-separated tables or as a YAML document. Peptide scores are looked up
// in the originating evidence through RunResult.Hit.
package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/proteinresolver/resolver"
)

// ErrUnknownFormat is returned for a format other than FormatTSV or FormatYAML.
var ErrUnknownFormat = errors.New("report: unknown format")

// Output formats.
const (
	FormatTSV  = "tsv"
	FormatYAML = "yaml"
)

// Run is the rendered form of one RunResult.
type Run struct {
	Identifier   string    `yaml:"identifier"`
	Input        string    `yaml:"input"`
	Observations int       `yaml:"observations"`
	Matched      int       `yaml:"matched"`
	Dropped      int       `yaml:"dropped"`
	CoarseGroups int       `yaml:"coarse_groups"`
	Groups       []Group   `yaml:"groups"`
	Proteins     []Protein `yaml:"proteins"`
	Peptides     []Peptide `yaml:"peptides"`
}

// Group is one fine group.
type Group struct {
	Index           int      `yaml:"index"`
	Coarse          int      `yaml:"coarse"`
	Proteins        []string `yaml:"proteins"`
	Peptides        []string `yaml:"peptides"`
	Target          int      `yaml:"target"`
	Decoy           int      `yaml:"decoy"`
	TargetPlusDecoy int      `yaml:"target_plus_decoy"`
	Intensity       float64  `yaml:"intensity"`
}

// Protein is one reachable protein.
type Protein struct {
	Accession            string   `yaml:"accession"`
	Type                 string   `yaml:"type"`
	Decoy                bool     `yaml:"decoy"`
	Coarse               int      `yaml:"coarse"`
	Fine                 int      `yaml:"fine"`
	Weight               float64  `yaml:"weight"`
	Coverage             float64  `yaml:"coverage"`
	ObservedCoverage     float64  `yaml:"observed_coverage"`
	ExperimentalPeptides int      `yaml:"experimental_peptides"`
	Indistinguishable    []string `yaml:"indistinguishable,omitempty"`
}

// Peptide is one reachable peptide.
type Peptide struct {
	Sequence     string   `yaml:"sequence"`
	Coarse       int      `yaml:"coarse"`
	Fine         int      `yaml:"fine"`
	Intensity    float64  `yaml:"intensity"`
	Observations int      `yaml:"observations"`
	Origin       string   `yaml:"origin,omitempty"`
	Score        *float64 `yaml:"score,omitempty"`
	TargetDecoy  string   `yaml:"target_decoy,omitempty"`
	Proteins     []string `yaml:"proteins"`
}

// Build converts a RunResult into its rendered form. Proteins and peptides
// appear in reindexed order; excluded nodes are left out.
func Build(res resolver.RunResult) Run {
	out := Run{
		Identifier:   res.Identifier,
		Input:        res.Kind.String(),
		Observations: res.Summary.Observations,
		Matched:      res.Summary.Matched,
		Dropped:      res.Summary.Dropped,
		CoarseGroups: len(res.Coarse),
	}
	g := res.Graph
	if g == nil {
		return out
	}
	accessions := func(idx []int) []string {
		s := make([]string, 0, len(idx))
		for _, p := range idx {
			s = append(s, g.Proteins[p].Record.Accession)
		}
		return s
	}

	for _, f := range res.Fine {
		seqs := make([]string, 0, len(f.Peptides))
		for _, p := range f.Peptides {
			seqs = append(seqs, g.Peptides[p].Sequence)
		}
		out.Groups = append(out.Groups, Group{
			Index:           f.Index,
			Coarse:          f.Coarse,
			Proteins:        accessions(f.Proteins),
			Peptides:        seqs,
			Target:          f.Target,
			Decoy:           f.Decoy,
			TargetPlusDecoy: f.TargetPlusDecoy,
			Intensity:       f.Intensity,
		})
	}

	for _, p := range res.Table.ProteinOrder {
		prot := g.Proteins[p]
		out.Proteins = append(out.Proteins, Protein{
			Accession:            prot.Record.Accession,
			Type:                 prot.Type.String(),
			Decoy:                prot.Record.Decoy,
			Coarse:               prot.CoarseGroup,
			Fine:                 prot.FineGroup,
			Weight:               prot.Weight,
			Coverage:             prot.Coverage,
			ObservedCoverage:     prot.ObservedCoverage,
			ExperimentalPeptides: prot.ExperimentalPeptides,
			Indistinguishable:    accessions(prot.Indistinguishable),
		})
	}

	for _, p := range res.Table.PeptideOrder {
		pep := g.Peptides[p]
		row := Peptide{
			Sequence:     pep.Sequence,
			Coarse:       pep.CoarseGroup,
			Fine:         pep.FineGroup,
			Intensity:    pep.Intensity,
			Observations: pep.Observations,
			Origin:       pep.Origin,
			Proteins:     accessions(pep.Proteins),
		}
		if hit, err := res.Hit(p); err == nil {
			score := hit.Score
			row.Score = &score
			row.TargetDecoy = hit.TargetDecoy
		}
		out.Peptides = append(out.Peptides, row)
	}

	return out
}

// Write renders results to w in the given format.
func Write(w io.Writer, results []resolver.RunResult, format string) error {
	runs := make([]Run, 0, len(results))
	for _, res := range results {
		runs = append(runs, Build(res))
	}
	switch format {
	case FormatTSV:
		return writeTSV(w, runs)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string][]Run{"runs": runs}); err != nil {
			return errors.Wrap(err, "report: yaml")
		}
		return errors.Wrap(enc.Close(), "report: yaml")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

func writeTSV(w io.Writer, runs []Run) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	rows := [][]string{}
	for _, run := range runs {
		rows = append(rows,
			[]string{"#run", run.Identifier, run.Input,
				itoa(run.Observations), itoa(run.Matched), itoa(run.Dropped), itoa(run.CoarseGroups)},
			[]string{"#group", "coarse", "proteins", "peptides", "target", "decoy", "target_plus_decoy", "intensity"},
		)
		for _, g := range run.Groups {
			rows = append(rows, []string{
				itoa(g.Index), itoa(g.Coarse), strings.Join(g.Proteins, ";"), strings.Join(g.Peptides, ";"),
				itoa(g.Target), itoa(g.Decoy), itoa(g.TargetPlusDecoy), ftoa(g.Intensity),
			})
		}
		rows = append(rows, []string{"#protein", "type", "decoy", "coarse", "fine", "weight",
			"coverage", "observed_coverage", "experimental_peptides", "indistinguishable"})
		for _, p := range run.Proteins {
			rows = append(rows, []string{
				p.Accession, p.Type, strconv.FormatBool(p.Decoy), itoa(p.Coarse), itoa(p.Fine), ftoa(p.Weight),
				ftoa(p.Coverage), ftoa(p.ObservedCoverage), itoa(p.ExperimentalPeptides),
				strings.Join(p.Indistinguishable, ";"),
			})
		}
		rows = append(rows, []string{"#peptide", "coarse", "fine", "intensity", "observations", "origin", "score", "target_decoy", "proteins"})
		for _, p := range run.Peptides {
			score := ""
			if p.Score != nil {
				score = ftoa(*p.Score)
			}
			rows = append(rows, []string{
				p.Sequence, itoa(p.Coarse), itoa(p.Fine), ftoa(p.Intensity), itoa(p.Observations),
				p.Origin, score, p.TargetDecoy, strings.Join(p.Proteins, ";"),
			})
		}
	}
	if err := cw.WriteAll(rows); err != nil {
		return errors.Wrap(err, "report: tsv")
	}

	return nil
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
