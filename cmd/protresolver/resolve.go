package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/proteinresolver/config"
	"github.com/katalvlaran/proteinresolver/dataset"
	"github.com/katalvlaran/proteinresolver/report"
	"github.com/katalvlaran/proteinresolver/resolver"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "resolve",
		Short:                      "Resolve identification and consensus files against a protein database",
		Args:                       cobra.NoArgs,
		SuggestionsMinimumDistance: 2,
		Long: `
Resolve every identification file and consensus file as its own run against
the same protein database, then write one report covering all runs.

Settings come from --config, PROTRESOLVER_* environment variables and flags,
in increasing order of precedence.`,
		RunE: runResolve,
	}

	f := cmd.Flags()
	f.StringP("config", "c", "", "settings file <YAML>")
	f.StringP("database", "d", "", "protein database file <YAML|JSON>")
	f.StringSliceP("identifications", "i", nil, "identification files, one run each")
	f.StringSliceP("consensus", "m", nil, "consensus map files, one run each")
	f.StringP("output", "o", "", "report file (default stdout)")
	f.StringP("format", "f", report.FormatTSV, "report format: tsv or yaml")
	f.Bool("top-hit-only", true, "keep only the best-ranked hit of each identification; false uses every candidate")
	f.Bool("batch-insert", false, "insert unknown peptides in one batch per run")
	f.IntP("parallel", "p", 1, "runs resolved concurrently")
	f.String("log-level", "info", "debug, info, warn or error")

	return cmd
}

func runResolve(cmd *cobra.Command, _ []string) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}
	config.Defaults(v)
	c, err := config.New(v)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: c.SlogLevel()}))

	entries, err := dataset.LoadDatabaseFile(c.Database)
	if err != nil {
		return err
	}

	var sources []resolver.Source
	for _, path := range c.Identifications {
		ids, err := dataset.LoadIdentificationsFile(path)
		if err != nil {
			return err
		}
		sources = append(sources, resolver.Source{Identifications: ids})
	}
	for _, path := range c.Consensus {
		cm, err := dataset.LoadConsensusFile(path)
		if err != nil {
			return err
		}
		sources = append(sources, resolver.Source{Consensus: cm})
	}

	opts := []resolver.Option{resolver.WithLogger(logger), resolver.WithParallel(c.Parallel)}
	if !c.TopHitOnly {
		opts = append(opts, resolver.WithAllHits())
	}
	if c.BatchInsert {
		opts = append(opts, resolver.WithBatchInsert())
	}
	r := resolver.New(opts...)
	r.SetProteinData(entries)

	results, err := r.ResolveBatch(cmd.Context(), sources)
	if err != nil {
		return err
	}

	if c.Output == "" || c.Output == "-" {
		err = report.Write(cmd.OutOrStdout(), results, c.Format)
	} else {
		var file *os.File
		if file, err = os.Create(c.Output); err != nil {
			return errors.Wrap(err, "create report")
		}
		err = writeReport(file, results, c.Format)
	}
	if err != nil {
		return err
	}
	logger.Info("report written", slog.Int("runs", len(results)), slog.String("format", c.Format))

	return nil
}

// writeReport renders results to wc and closes it. A failed close is
// reported, since the report may be incomplete.
func writeReport(wc io.WriteCloser, results []resolver.RunResult, format string) error {
	if err := report.Write(wc, results, format); err != nil {
		_ = wc.Close()
		return err
	}

	return errors.Wrap(wc.Close(), "close report")
}
