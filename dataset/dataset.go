package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/blobstore"
	"github.com/hupe1980/vecmath/codec"
	"github.com/hupe1980/vecmath/compress"
	"golang.org/x/sync/errgroup"
)

const (
	version    = 1
	headerSize = 7
)

var magic = []byte("VMDS")

var (
	// ErrInvalidFormat is returned when data is not a dataset.
	ErrInvalidFormat = errors.New("invalid dataset format")
	// ErrUnsupportedVersion is returned for datasets written by a newer format.
	ErrUnsupportedVersion = errors.New("unsupported dataset version")
	// ErrUnknownCodec is returned when the header names an unknown codec.
	ErrUnknownCodec = errors.New("unknown codec")
)

// Encode serializes vectors into the dataset format.
func Encode(vectors []vecmath.Vector, optFns ...Option) ([]byte, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if len(vectors) > 0 {
		if _, err := vecmath.CheckLengths(vectors); err != nil {
			return nil, err
		}
	}
	if !opts.compression.Valid() {
		return nil, fmt.Errorf("unknown compression type %d", opts.compression)
	}
	name := opts.codec.Name()
	if len(name) == 0 || len(name) > 255 {
		return nil, fmt.Errorf("%w: invalid codec name %q", ErrUnknownCodec, name)
	}

	rows := make([][]float64, len(vectors))
	for i, v := range vectors {
		rows[i] = v
	}
	payload, err := opts.codec.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode vectors: %w", err)
	}
	block, err := compress.Encode(payload, opts.compression)
	if err != nil {
		return nil, fmt.Errorf("compress vectors: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(headerSize + len(name) + len(block))
	buf.Write(magic)
	buf.WriteByte(version)
	buf.WriteByte(byte(opts.compression))
	buf.WriteByte(byte(len(name)))
	buf.WriteString(name)
	buf.Write(block)
	return buf.Bytes(), nil
}

// Decode parses data written by Encode.
func Decode(data []byte) ([]vecmath.Vector, error) {
	if len(data) < headerSize || !bytes.Equal(data[:4], magic) {
		return nil, ErrInvalidFormat
	}
	if data[4] != version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}
	comp := compress.Type(data[5])
	if !comp.Valid() {
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidFormat, data[5])
	}
	nameLen := int(data[6])
	if len(data) < headerSize+nameLen {
		return nil, fmt.Errorf("%w: truncated header", ErrInvalidFormat)
	}
	name := string(data[headerSize : headerSize+nameLen])
	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	payload, err := compress.Decode(data[headerSize+nameLen:], comp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	var rows [][]float64
	if err := c.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	vectors := make([]vecmath.Vector, len(rows))
	for i, r := range rows {
		if r == nil {
			r = []float64{}
		}
		vectors[i] = r
	}
	if len(vectors) > 0 {
		if _, err := vecmath.CheckLengths(vectors); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
	}
	return vectors, nil
}

// Save encodes vectors and writes them to store under name.
func Save(ctx context.Context, store blobstore.BlobStore, name string, vectors []vecmath.Vector, optFns ...Option) error {
	data, err := Encode(vectors, optFns...)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("save dataset %q: %w", name, err)
	}
	return nil
}

// Load reads and decodes the dataset stored under name.
func Load(ctx context.Context, store blobstore.BlobStore, name string) ([]vecmath.Vector, error) {
	data, err := blobstore.Get(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", name, err)
	}
	vectors, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", name, err)
	}
	return vectors, nil
}

// LoadAll loads several datasets concurrently. Results keep the order of
// names. The first failure cancels the remaining loads.
func LoadAll(ctx context.Context, store blobstore.BlobStore, names []string) ([][]vecmath.Vector, error) {
	results := make([][]vecmath.Vector, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, name := range names {
		g.Go(func() error {
			vectors, err := Load(ctx, store, name)
			if err != nil {
				return err
			}
			results[i] = vectors
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
