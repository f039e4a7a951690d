// Package dataset persists collections of vectors.
//
// A dataset is a single blob:
//
//	magic   [4]byte  "VMDS"
//	version uint8    1
//	comp    uint8    compression type (none, lz4, zstd)
//	nameLen uint8    length of the codec name
//	codec   []byte   codec name, e.g. "go-json"
//	block   []byte   compressed block holding the codec-encoded [][]float64
//
// All vectors in a dataset share one length; Encode rejects ragged input and
// Decode rejects ragged payloads. An empty dataset is valid.
//
//	err := dataset.Save(ctx, store, "points.vmds", vectors,
//	    dataset.WithCompression(compress.ZSTD))
//	vectors, err := dataset.Load(ctx, store, "points.vmds")
package dataset
