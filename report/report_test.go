package report_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/evidence"
	"github.com/katalvlaran/proteinresolver/report"
	"github.com/katalvlaran/proteinresolver/resolver"
)

func resolved(t *testing.T) resolver.RunResult {
	t.Helper()
	r := resolver.New(resolver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.SetProteinData([]core.ProteinEntry{
		{Record: core.Record{Accession: "ProteinA"}, Peptides: []string{"PEP1", "PEP2"}},
		{Record: core.Record{Accession: "ProteinB", Decoy: true}, Peptides: []string{"PEP2", "PEP3"}},
	})
	res, err := r.ResolveIdentifications([]evidence.Identification{
		{Identifier: "run-1", Origin: "a.mzML", Intensity: 10, Hits: []evidence.PeptideHit{{Sequence: "PEP1", Score: 0.99, TargetDecoy: "target"}}},
		{Origin: "a.mzML", Intensity: 20, Hits: []evidence.PeptideHit{{Sequence: "PEP2", Score: 0.5}}},
	})
	require.NoError(t, err)

	return res
}

func TestBuild(t *testing.T) {
	run := report.Build(resolved(t))

	assert.Equal(t, "run-1", run.Identifier)
	assert.Equal(t, "identifications", run.Input)
	assert.Equal(t, 1, run.CoarseGroups)
	require.Len(t, run.Groups, 1)
	assert.Equal(t, []string{"ProteinA", "ProteinB"}, run.Groups[0].Proteins)
	assert.Equal(t, []string{"PEP1", "PEP2"}, run.Groups[0].Peptides)
	assert.Equal(t, 15.0, run.Groups[0].Intensity)

	require.Len(t, run.Proteins, 2)
	assert.Equal(t, "primary", run.Proteins[0].Type)
	assert.Equal(t, "secondary", run.Proteins[1].Type)
	assert.True(t, run.Proteins[1].Decoy)

	// PEP3 was never observed and is left out
	require.Len(t, run.Peptides, 2)
	assert.Equal(t, "PEP2", run.Peptides[1].Sequence)
	assert.Equal(t, []string{"ProteinA", "ProteinB"}, run.Peptides[1].Proteins)
	require.NotNil(t, run.Peptides[0].Score)
	assert.Equal(t, 0.99, *run.Peptides[0].Score)
	assert.Equal(t, "target", run.Peptides[0].TargetDecoy)
	assert.Empty(t, run.Peptides[1].TargetDecoy)
}

func TestBuild_EmptyRun(t *testing.T) {
	run := report.Build(resolver.RunResult{Identifier: "x"})
	assert.Equal(t, "x", run.Identifier)
	assert.Empty(t, run.Proteins)
}

func TestWrite_TSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, []resolver.RunResult{resolved(t)}, report.FormatTSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "#run\trun-1\tidentifications\t2\t2\t0\t1", lines[0])
	assert.Contains(t, lines, "0\t0\tProteinA;ProteinB\tPEP1;PEP2\t1\t1\t2\t15")
	assert.Contains(t, lines, "PEP1\t0\t0\t10\t1\ta.mzML\t0.99\ttarget\tProteinA")
	assert.Contains(t, lines, "PEP2\t0\t0\t20\t1\ta.mzML\t0.5\t\tProteinA;ProteinB")
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, []resolver.RunResult{resolved(t)}, report.FormatYAML))

	var doc struct {
		Runs []report.Run `yaml:"runs"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Runs, 1)
	assert.Equal(t, "run-1", doc.Runs[0].Identifier)
	assert.Len(t, doc.Runs[0].Proteins, 2)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := report.Write(io.Discard, nil, "xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
