package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type defines the compression algorithm used.
type Type uint8

const (
	// None stores blocks uncompressed.
	None Type = 0
	// LZ4 uses LZ4 block compression (fast).
	LZ4 Type = 1
	// ZSTD uses ZSTD compression (better ratio).
	ZSTD Type = 2
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseType resolves a compression type by name.
func ParseType(name string) (Type, error) {
	switch name {
	case "", "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return ZSTD, nil
	default:
		return None, fmt.Errorf("unknown compression %q", name)
	}
}

// Valid reports whether t is a known compression type.
func (t Type) Valid() bool {
	return t <= ZSTD
}

var (
	// ErrCorrupt is returned when a block cannot be decoded.
	ErrCorrupt = errors.New("corrupt compressed block")
	// ErrTooLarge is returned when data exceeds MaxBlockSize.
	ErrTooLarge = errors.New("block too large")
)

const headerSize = 8

// MaxBlockSize is the largest uncompressed block Encode writes and Decode
// accepts.
const MaxBlockSize = 1 << 30

// lz4MaxRatio bounds the expansion of a single LZ4 block.
const lz4MaxRatio = 255

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Encode compresses data into a block using typ.
// If compression saves less than 10%, the block is stored uncompressed.
func Encode(data []byte, typ Type) ([]byte, error) {
	if len(data) > MaxBlockSize {
		return nil, ErrTooLarge
	}

	var compressed []byte
	switch typ {
	case None:
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		compressed = buf[:n] // n == 0: incompressible
	case ZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, fmt.Errorf("unknown compression type %d", typ)
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		out := make([]byte, headerSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[headerSize:], data)
		return out, nil
	}

	out := make([]byte, headerSize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(compressed)))
	copy(out[headerSize:], compressed)
	return out, nil
}

// Decode decompresses a block written by Encode with the same typ.
func Decode(block []byte, typ Type) ([]byte, error) {
	if len(block) < headerSize {
		return nil, fmt.Errorf("%w: block too small for header", ErrCorrupt)
	}

	uncompressedSize := uint64(binary.LittleEndian.Uint32(block[0:]))
	compressedSize := uint64(binary.LittleEndian.Uint32(block[4:]))
	payload := block[headerSize:]

	if compressedSize == 0 {
		if uint64(len(payload)) < uncompressedSize {
			return nil, fmt.Errorf("%w: block data too small", ErrCorrupt)
		}
		return payload[:uncompressedSize], nil
	}

	if uint64(len(payload)) < compressedSize {
		return nil, fmt.Errorf("%w: compressed block data too small", ErrCorrupt)
	}
	payload = payload[:compressedSize]
	if uncompressedSize > MaxBlockSize {
		return nil, fmt.Errorf("%w: declared size %d exceeds limit", ErrCorrupt, uncompressedSize)
	}
	if typ == LZ4 && uncompressedSize > compressedSize*lz4MaxRatio {
		return nil, fmt.Errorf("%w: declared size %d exceeds lz4 bound", ErrCorrupt, uncompressedSize)
	}
	result := make([]byte, uncompressedSize)

	switch typ {
	case LZ4:
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint64(n) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return result, nil
	case ZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(payload, result[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint64(len(decoded)) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%w: compressed block with compression %s", ErrCorrupt, typ)
	}
}
