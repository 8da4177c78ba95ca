package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/graph"
	"github.com/rileyhilliard/sysgraph/internal/sensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func probeCatalog() *fakeCatalog {
	return &fakeCatalog{
		defs: map[sensors.Kind][]sensors.SeriesDef{
			sensors.KindCPU: {
				{ID: 0, Name: "cpu0", Source: constant(2400)},
				{ID: 1, Name: "cpu1", Source: graph.SourceFunc(func(context.Context) (float64, error) {
					return 0, fmt.Errorf("cpufreq missing")
				})},
			},
		},
		errs: map[sensors.Kind]error{
			sensors.KindNet: errors.New(errors.ErrSensor, "No network interfaces found",
				"Loopback interfaces are not graphed"),
		},
	}
}

func TestProbeKinds(t *testing.T) {
	reports := probeKinds(context.Background(), probeCatalog(),
		[]sensors.Kind{sensors.KindCPU, sensors.KindNet, "gpu"}, nil)
	require.Len(t, reports, 3)

	assert.Equal(t, "cpu", reports[0].Kind)
	assert.Equal(t, "Cpu Frequency", reports[0].Title)
	assert.Equal(t, []string{"cpu0", "cpu1"}, reports[0].Series)
	assert.Nil(t, reports[0].Error)

	require.NotNil(t, reports[1].Error)
	assert.Equal(t, ErrCodeSensorUnavailable, reports[1].Error.Code)
	assert.Empty(t, reports[1].Series)

	require.NotNil(t, reports[2].Error)
	assert.Equal(t, ErrCodeConfigInvalid, reports[2].Error.Code)

	rows := probeRows(reports)
	assert.True(t, rows[0].OK)
	assert.Equal(t, "2 series: cpu0, cpu1", rows[0].Message)
	assert.False(t, rows[1].OK)
	assert.Equal(t, "No network interfaces found", rows[1].Message)
	assert.Equal(t, "Loopback interfaces are not graphed", rows[1].Hint)
}

func TestSummarizeSeries(t *testing.T) {
	assert.Equal(t, "1 series: ram", summarizeSeries([]string{"ram"}))
	assert.Equal(t, "6 series: a, b, c, d, +2 more",
		summarizeSeries([]string{"a", "b", "c", "d", "e", "f"}))
}

func TestShowKind(t *testing.T) {
	var out bytes.Buffer
	err := showKind(context.Background(), &out, probeCatalog(), sensors.KindCPU, nil, false)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Cpu Frequency: current frequency of each logical CPU")
	assert.Contains(t, got, "Series")
	assert.Contains(t, got, "2.40 GHz")
	assert.Contains(t, got, "cpufreq missing")
}

func TestShowKind_JSON(t *testing.T) {
	var out bytes.Buffer
	err := showKind(context.Background(), &out, probeCatalog(), sensors.KindCPU, nil, true)
	require.NoError(t, err)

	doc := out.String()
	assert.True(t, gjson.Get(doc, "success").Bool())
	assert.Equal(t, int64(2), gjson.Get(doc, "data.#").Int())
	assert.Equal(t, 2400.0, gjson.Get(doc, "data.0.value").Float())
	assert.Equal(t, "2.40 GHz", gjson.Get(doc, "data.0.text").String())
	assert.False(t, gjson.Get(doc, "data.1.value").Exists())
	assert.Equal(t, "cpufreq missing", gjson.Get(doc, "data.1.error").String())
}

func TestShowKind_Errors(t *testing.T) {
	var out bytes.Buffer
	err := showKind(context.Background(), &out, probeCatalog(), sensors.KindNet, nil, false)
	assert.True(t, errors.IsCode(err, errors.ErrSensor))

	err = showKind(context.Background(), &out, probeCatalog(), "gpu", nil, false)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Empty(t, out.String())
}
