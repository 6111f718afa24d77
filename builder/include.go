package builder

import (
	"log/slog"

	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/evidence"
)

// Summary reports what an Include pass did with its observations.
type Summary struct {
	// Observations is the number of observations offered.
	Observations int
	// Matched is the number of observations attached to a peptide node.
	Matched int
	// Inserted is the number of peptide nodes created for unknown sequences.
	Inserted int
	// Dropped is the number of observations that reached no protein.
	Dropped int
}

// Include overlays obs on g. See the package documentation for the rules.
func Include(g *core.Graph, obs []evidence.Observation, opts ...Option) Summary {
	cfg := newBuilderConfig(opts...)
	sum := Summary{Observations: len(obs)}
	if g == nil {
		sum.Dropped = len(obs)
		return sum
	}

	// Accessions only attach peptides created here; database peptides keep
	// their theoretical edges.
	inserted := make(map[string]bool)

	// 1. Batch mode: create every insertable node up front
	if cfg.batchInsert {
		var pending []string
		for i := range obs {
			seq := core.UnmodifiedSequence(obs[i].Sequence)
			if seq == "" || g.FindPeptide(seq) < len(g.Peptides) {
				continue
			}
			if len(resolve(g, obs[i].Accessions)) > 0 {
				pending = append(pending, seq)
				inserted[seq] = true
			}
		}
		sum.Inserted = g.InsertPeptides(pending)
	}

	// 2. Attach every observation
	for i := range obs {
		o := &obs[i]
		seq := core.UnmodifiedSequence(o.Sequence)
		if seq == "" {
			sum.Dropped++
			cfg.logger.Debug("dropping hit without sequence", slog.Int("observation", i))
			continue
		}

		prots := resolve(g, o.Accessions)
		pep := g.FindPeptide(seq)
		if pep == len(g.Peptides) {
			if len(prots) == 0 {
				sum.Dropped++
				cfg.logger.Debug("dropping hit without known protein",
					slog.String("sequence", seq), slog.Int("observation", i))
				continue
			}
			var err error
			if pep, err = g.InsertPeptide(seq); err != nil {
				sum.Dropped++
				continue
			}
			sum.Inserted++
			inserted[seq] = true
		}

		if inserted[seq] {
			for _, p := range prots {
				_ = g.Connect(p, pep) // both indices come from g
			}
		}
		if len(g.Peptides[pep].Proteins) == 0 {
			sum.Dropped++
			continue
		}
		_ = g.Observe(pep, o.Intensity, o.Origin, o.Source)
		sum.Matched++
	}

	g.CountExperimental()
	cfg.logger.Info("evidence included",
		slog.Int("observations", sum.Observations),
		slog.Int("matched", sum.Matched),
		slog.Int("inserted", sum.Inserted),
		slog.Int("dropped", sum.Dropped))

	return sum
}

// resolve maps accessions to protein indices, skipping unknown ones.
func resolve(g *core.Graph, accessions []string) []int {
	var out []int
	for _, acc := range accessions {
		if p, err := g.ProteinByAccession(acc); err == nil {
			out = append(out, p)
		}
	}

	return out
}
