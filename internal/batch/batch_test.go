package batch

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/aromaticity"
	"github.com/katalvlaran/lvchem/cycles"
	"github.com/katalvlaran/lvchem/internal/logging"
	"github.com/katalvlaran/lvchem/internal/metrics"
	"github.com/katalvlaran/lvchem/smiles"
)

var daylight = aromaticity.MustNew(aromaticity.Config{Model: aromaticity.Daylight(), Cycles: cycles.All()})

func TestNewRunner(t *testing.T) {
	_, err := NewRunner(nil)
	assert.ErrorIs(t, err, ErrNoDetector)

	r, err := NewRunner(daylight, WithWorkers(0), WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, 1, r.workers)
}

func TestReadInputs(t *testing.T) {
	in := "# header\nC1=CC=CC=C1 benzene\n\n  c1ccoc1\tfuran ring  \nCCO\n"
	got, err := ReadInputs(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Input{
		{Line: 2, SMILES: "C1=CC=CC=C1", Title: "benzene"},
		{Line: 4, SMILES: "c1ccoc1", Title: "furan ring"},
		{Line: 5, SMILES: "CCO"},
	}, got)
}

func TestRun(t *testing.T) {
	reg := metrics.NewRegistry()
	var logs bytes.Buffer
	r, err := NewRunner(daylight,
		WithWorkers(3),
		WithMetrics(reg),
		WithLogger(logging.NewWriter(&logs, slog.LevelDebug)),
	)
	require.NoError(t, err)

	inputs := []Input{
		{Line: 1, SMILES: "C1=CC=CC=C1"},
		{Line: 2, SMILES: "C1=CC2=CC=CC=CC2=C1"},
		{Line: 3, SMILES: "C1CC"},
		{Line: 4, SMILES: "CCO"},
		{Line: 5, SMILES: "c1ccoc1"},
	}
	rep, err := r.Run(context.Background(), inputs)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rep.RunID)
	assert.Equal(t, aromaticity.NameDaylight, rep.Model)
	assert.Equal(t, "all", rep.Finder)
	assert.Equal(t, 1, rep.Failed)
	require.Len(t, rep.Results, len(inputs))

	want := []int{6, 10, 0, 0, 5}
	for i, res := range rep.Results {
		assert.Equal(t, inputs[i], res.Input)
		assert.Len(t, res.Bonds, want[i], res.SMILES)
	}
	assert.ErrorIs(t, rep.Results[2].Err, smiles.ErrUnclosedRing)
	assert.Equal(t, 3, rep.Results[1].Rings)

	counter, err := reg.MoleculesTotal.GetMetricWithLabelValues(aromaticity.NameDaylight, metrics.StatusOK)
	require.NoError(t, err)
	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))
	assert.Equal(t, 4.0, metric.GetCounter().GetValue())
	assert.Contains(t, logs.String(), "run_id="+rep.RunID.String())
	assert.Contains(t, logs.String(), "molecule failed")
}

func TestRun_Cancelled(t *testing.T) {
	r, err := NewRunner(daylight, WithWorkers(2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, []Input{{Line: 1, SMILES: "c1ccccc1"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPerceive_Typing(t *testing.T) {
	strict := aromaticity.MustNew(aromaticity.Config{Model: aromaticity.Strict(), Cycles: cycles.All()})
	res := Perceive(strict, Input{SMILES: "C1=CC=CO1"})
	require.NoError(t, res.Err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Atoms)
}
