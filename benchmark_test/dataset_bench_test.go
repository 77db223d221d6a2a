package benchmark_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/geocluster/blobstore"
	"github.com/hupe1980/geocluster/dataset"
	"github.com/hupe1980/geocluster/testutil"
)

func benchCSV(b *testing.B, rows int) []byte {
	b.Helper()

	var sb strings.Builder
	for _, rec := range testutil.NewRNG(1).Records(rows) {
		fmt.Fprintf(&sb, "%s,%f,%f,%d,%f\n",
			rec.Key, rec.Loc.X, rec.Loc.Y, rec.Population, rec.Attribute)
	}

	return []byte(sb.String())
}

func BenchmarkDecodeCSV(b *testing.B) {
	data := benchCSV(b, 10000)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	b.ResetTimer()
	for b.Loop() {
		if _, err := dataset.DecodeCSV(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOpenCompressed(b *testing.B) {
	raw := benchCSV(b, 10000)

	var gzBuf bytes.Buffer
	gw := gzip.NewWriter(&gzBuf)
	if _, err := gw.Write(raw); err != nil {
		b.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		b.Fatal(err)
	}

	var zstBuf bytes.Buffer
	zw, err := zstd.NewWriter(&zstBuf)
	if err != nil {
		b.Fatal(err)
	}
	if _, err := zw.Write(raw); err != nil {
		b.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		b.Fatal(err)
	}

	store := blobstore.NewMemStore()
	store.Put("table.csv", raw)
	store.Put("table.csv.gz", gzBuf.Bytes())
	store.Put("table.csv.zst", zstBuf.Bytes())

	ctx := context.Background()

	for _, name := range []string{"table.csv", "table.csv.gz", "table.csv.zst"} {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(raw)))

			b.ResetTimer()
			for b.Loop() {
				if _, err := dataset.Open(ctx, store, name); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
