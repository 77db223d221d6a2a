package dataset

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/geocluster/blobstore"
)

// Open reads and decodes the named table from a blob store. Blobs ending
// in .zst, .gz or .lz4 are decompressed transparently; anything else is
// decoded as plain CSV.
func Open(ctx context.Context, store blobstore.BlobStore, name string) (*Table, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	defer func() { _ = blob.Close() }()

	var r io.Reader = blob

	switch path.Ext(name) {
	case ".zst":
		dec, err := zstd.NewReader(blob)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}

		defer dec.Close()

		r = dec
	case ".gz":
		gz, err := gzip.NewReader(blob)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}

		defer func() { _ = gz.Close() }()

		r = gz
	case ".lz4":
		r = lz4.NewReader(blob)
	}

	tbl, err := DecodeCSV(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	return tbl, nil
}
