package geocluster

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geocluster/cluster"
	"github.com/hupe1980/geocluster/codec"
	"github.com/hupe1980/geocluster/model"
)

func TestReport(t *testing.T) {
	gc, err := New(testTable(t))
	require.NoError(t, err)

	clusters, err := gc.Hierarchical(2)
	require.NoError(t, err)

	report, err := gc.Report(clusters)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Rows)
	require.Len(t, report.Clusters, 2)

	var merged, single *ReportEntry
	for i := range report.Clusters {
		switch report.Clusters[i].Population {
		case 400:
			merged = &report.Clusters[i]
		case 200:
			single = &report.Clusters[i]
		}
	}

	require.NotNil(t, merged)
	assert.Equal(t, []string{"01001", "01003"}, merged.Keys)
	assert.Equal(t, 7.5, merged.CenterX)
	assert.Equal(t, 0.0, merged.CenterY)

	require.NotNil(t, single)
	assert.Equal(t, []string{"01005"}, single.Keys)
	assert.Equal(t, 0.0, single.CenterX)
	assert.Equal(t, 50.0, single.CenterY)
}

func TestReportUnknownMember(t *testing.T) {
	gc, err := New(testTable(t))
	require.NoError(t, err)

	stray := cluster.NewSingleton(model.RowID(99), model.Point{X: 1, Y: 1}, 10, 0)

	_, err = gc.Report([]*cluster.Cluster{stray})

	var unknownErr *cluster.ErrUnknownMember
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, model.RowID(99), unknownErr.Row)
}

func TestEncodeReport(t *testing.T) {
	t.Run("DefaultCodec", func(t *testing.T) {
		gc, err := New(testTable(t))
		require.NoError(t, err)

		clusters, err := gc.Hierarchical(2)
		require.NoError(t, err)

		data, err := gc.EncodeReport(clusters)
		require.NoError(t, err)

		var decoded Report
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, 3, decoded.Rows)
		assert.Len(t, decoded.Clusters, 2)
	})

	t.Run("StdlibCodec", func(t *testing.T) {
		gc, err := New(testTable(t), WithCodec(codec.JSON{}))
		require.NoError(t, err)

		clusters, err := gc.Hierarchical(1)
		require.NoError(t, err)

		data, err := gc.EncodeReport(clusters)
		require.NoError(t, err)

		var decoded Report
		require.NoError(t, json.Unmarshal(data, &decoded))

		require.Len(t, decoded.Clusters, 1)
		assert.Equal(t, []string{"01001", "01003", "01005"}, decoded.Clusters[0].Keys)
		assert.Equal(t, int64(600), decoded.Clusters[0].Population)
	})
}
