package resolver

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/proteinresolver/builder"
	"github.com/katalvlaran/proteinresolver/classify"
	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/evidence"
	"github.com/katalvlaran/proteinresolver/partition"
	"github.com/katalvlaran/proteinresolver/reindex"
	"github.com/katalvlaran/proteinresolver/stats"
)

// ErrNoDatabase is reported by Validate when no protein data was loaded.
var ErrNoDatabase = errors.New("resolver: no protein data loaded")

// Resolver holds the theoretical database and the accumulated results.
// It is safe for concurrent use; runs never share mutable graph state.
type Resolver struct {
	mu      sync.RWMutex // guards db and results
	db      *core.Database
	results []RunResult
	opts    options
}

// Source is one evidence source for ResolveBatch. When Consensus is set the
// source is a consensus map, otherwise Identifications is used.
type Source struct {
	Identifications []evidence.Identification
	Consensus       *evidence.ConsensusMap
}

// New returns a Resolver without protein data.
func New(opts ...Option) *Resolver {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Resolver{opts: o}
}

// SetProteinData loads the theoretical node set used by every later run.
func (r *Resolver) SetProteinData(entries []core.ProteinEntry) {
	db := core.NewDatabase(entries)
	prots, peps := db.Len()
	r.opts.logger.Info("protein data loaded",
		slog.Int("entries", len(entries)),
		slog.Int("proteins", prots),
		slog.Int("peptides", peps))

	r.mu.Lock()
	r.db = db
	r.mu.Unlock()
}

// Validate returns ErrNoDatabase if SetProteinData was never called.
func (r *Resolver) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.db == nil {
		return ErrNoDatabase
	}

	return nil
}

// ResolveIdentifications resolves an identification list and appends the result.
func (r *Resolver) ResolveIdentifications(ids []evidence.Identification) (RunResult, error) {
	res, err := r.resolve(Source{Identifications: ids})
	if err != nil {
		return RunResult{}, err
	}
	r.append(res)

	return res, nil
}

// ResolveConsensus resolves a consensus map and appends the result.
func (r *Resolver) ResolveConsensus(cm *evidence.ConsensusMap) (RunResult, error) {
	if cm == nil {
		cm = &evidence.ConsensusMap{}
	}
	res, err := r.resolve(Source{Consensus: cm})
	if err != nil {
		return RunResult{}, err
	}
	r.append(res)

	return res, nil
}

// ResolveBatch resolves sources concurrently, at most WithParallel at a time,
// each on its own database snapshot. On success the results are appended in
// input order; on error or cancellation nothing is appended.
func (r *Resolver) ResolveBatch(ctx context.Context, sources []Source) ([]RunResult, error) {
	out := make([]RunResult, len(sources))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(r.opts.parallel)
	for i := range sources {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.resolve(sources[i])
			if err != nil {
				return errors.Wrapf(err, "source %d", i)
			}
			out[i] = res

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.results = append(r.results, out...)
	r.mu.Unlock()

	return out, nil
}

// Results returns the accumulated results in run order.
func (r *Resolver) Results() []RunResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.results)
}

// Clear drops every accumulated result. The protein data stays loaded.
func (r *Resolver) Clear() {
	r.mu.Lock()
	r.results = nil
	r.mu.Unlock()
}

func (r *Resolver) append(res RunResult) {
	r.mu.Lock()
	r.results = append(r.results, res)
	r.mu.Unlock()
}

// resolve runs the whole pipeline for one source on a fresh snapshot.
func (r *Resolver) resolve(src Source) (RunResult, error) {
	res := RunResult{}
	var obs []evidence.Observation
	if src.Consensus != nil {
		res.Kind = InputConsensus
		res.Consensus = src.Consensus
		res.Identifier = src.Consensus.Identifier
		obs = evidence.FromConsensus(src.Consensus, r.opts.topHitOnly)
	} else {
		res.Kind = InputIdentifications
		res.Identifications = src.Identifications
		for i := range src.Identifications {
			if src.Identifications[i].Identifier != "" {
				res.Identifier = src.Identifications[i].Identifier
				break
			}
		}
		obs = evidence.FromIdentifications(src.Identifications, r.opts.topHitOnly)
	}
	if res.Identifier == "" {
		res.Identifier = uuid.NewString()
	}
	logger := r.opts.logger.With(slog.String("run", res.Identifier), slog.String("input", res.Kind.String()))

	r.mu.RLock()
	db := r.db
	r.mu.RUnlock()
	if db == nil {
		logger.Warn("resolving without protein data")
	}
	g := db.Snapshot()

	// 1. Graph
	bopts := []builder.Option{builder.WithLogger(logger)}
	if r.opts.batchInsert {
		bopts = append(bopts, builder.WithBatchInsert())
	}
	res.Summary = builder.Include(g, obs, bopts...)

	// 2. Partition
	part, err := partition.Compute(g)
	if err != nil {
		return RunResult{}, errors.Wrapf(err, "run %s", res.Identifier)
	}

	// 3. Reindex, classify, statistics
	res.Table = reindex.Build(g, part.Fine)
	classify.Apply(g, classify.Compute(g, res.Table))
	stats.Compute(g, part.Fine)
	stats.ObservedCoverage(g)

	res.Graph = g
	res.Coarse = part.Coarse
	res.Fine = part.Fine
	logger.Info("run resolved",
		slog.Int("coarse_groups", len(res.Coarse)),
		slog.Int("fine_groups", len(res.Fine)),
		slog.Int("reachable_proteins", res.Table.ProteinSentinel()))

	return res, nil
}
