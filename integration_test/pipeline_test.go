package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geocluster"
	"github.com/hupe1980/geocluster/blobstore"
	"github.com/hupe1980/geocluster/cluster"
	"github.com/hupe1980/geocluster/dataset"
	"github.com/hupe1980/geocluster/testutil"
)

const countiesCSV = "01001,1269.0,1116.0,43671,0.000077\n" +
	"01003,1057.0,1280.0,140415,0.000083\n" +
	"01005,1381.0,1228.0,29038,0.000091\n" +
	"01007,1350.0,1107.0,20826,0.000070\n" +
	"01009,1324.0,1043.0,51024,0.000066\n" +
	"01011,1386.0,1174.0,11714,0.000092\n" +
	"01013,1261.0,1245.0,21399,0.000083\n" +
	"01015,1371.0,1077.0,112249,0.000071\n"

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer

	w := gzip.NewWriter(&buf)

	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestE2E_LoadClusterReport(t *testing.T) {
	dir := t.TempDir()

	// 1. Publish a compressed table to a local store.
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "counties.csv.gz"),
		gzipBytes(t, []byte(countiesCSV)),
		0o600,
	))

	// 2. Open it through the caching decorator.
	store := blobstore.NewCachedStore(blobstore.NewLocalStore(dir), 1<<20)

	gc, err := geocluster.Open(context.Background(), store, "counties.csv.gz")
	require.NoError(t, err)
	require.Equal(t, 8, gc.Table().Len())

	// 3. Cluster both ways and verify conservation of rows and population.
	hier, err := gc.Hierarchical(3)
	require.NoError(t, err)
	require.Len(t, hier, 3)

	km, err := gc.KMeans(3, 5)
	require.NoError(t, err)
	require.Len(t, km, 3)

	var wantPopulation int64
	for _, rec := range gc.Table().Records() {
		wantPopulation += rec.Population
	}

	for _, clusters := range [][]*cluster.Cluster{hier, km} {
		var got int64
		for _, c := range clusters {
			got += c.Population()
		}
		assert.Equal(t, wantPopulation, got)
	}

	// 4. Distortions are non-negative and the report covers every row.
	hd, err := gc.Distortion(hier)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, hd, 0.0)

	kd, err := gc.Distortion(km)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, kd, 0.0)

	report, err := gc.Report(hier)
	require.NoError(t, err)
	assert.Equal(t, 8, report.Rows)

	seen := map[string]bool{}
	for _, entry := range report.Clusters {
		for _, key := range entry.Keys {
			assert.False(t, seen[key], "key %s reported twice", key)
			seen[key] = true
		}
	}
	assert.Len(t, seen, 8)

	// 5. The encoded report round-trips as JSON.
	data, err := gc.EncodeReport(hier)
	require.NoError(t, err)

	var decoded geocluster.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.Rows, decoded.Rows)
}

func TestE2E_SweepMonotonicity(t *testing.T) {
	tbl, err := dataset.New(testutil.NewRNG(11).Records(40))
	require.NoError(t, err)

	gc, err := geocluster.New(tbl)
	require.NoError(t, err)

	comparison, err := gc.Sweep(1, 40, 3)
	require.NoError(t, err)

	require.Len(t, comparison.Hierarchical, 40)
	require.Len(t, comparison.KMeans, 40)

	// Each agglomerative merge folds members onto a shared centroid, so
	// distortion can only shrink as the cluster count grows.
	for i := 1; i < len(comparison.Hierarchical); i++ {
		assert.LessOrEqual(t,
			comparison.Hierarchical[i].Distortion,
			comparison.Hierarchical[i-1].Distortion,
			"hierarchical distortion increased from k=%d to k=%d",
			comparison.Hierarchical[i-1].Clusters,
			comparison.Hierarchical[i].Clusters,
		)
	}

	for _, p := range comparison.KMeans {
		assert.GreaterOrEqual(t, p.Distortion, 0.0)
	}

	// At k == n both strategies keep every row in its own cluster.
	assert.Equal(t, 0.0, comparison.Hierarchical[39].Distortion)
	assert.Equal(t, 0.0, comparison.KMeans[39].Distortion)
}

func TestE2E_DecoratedRemoteStore(t *testing.T) {
	// Simulate a remote store behind throttling and caching decorators.
	mem := blobstore.NewMemStore()
	mem.Put("table.csv.gz", gzipBytes(t, []byte(countiesCSV)))

	store := blobstore.NewCachedStore(
		blobstore.NewThrottledStore(mem, 1<<20),
		1<<20,
	)

	gc, err := geocluster.Open(context.Background(), store, "table.csv.gz")
	require.NoError(t, err)

	comparison, err := gc.Sweep(2, 4, 2)
	require.NoError(t, err)
	require.Len(t, comparison.KMeans, 3)

	// A second open of the same table is served from cache.
	_, err = geocluster.Open(context.Background(), store, "table.csv.gz")
	require.NoError(t, err)

	hits, _ := store.Stats()
	assert.Equal(t, int64(1), hits)
}
