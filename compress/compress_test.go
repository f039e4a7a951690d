package compress

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	compressible := bytes.Repeat([]byte("0.5,0.25,0.125,"), 512)
	random := []byte{0x13, 0x7f, 0xa2, 0x01, 0xee, 0x42, 0x99, 0x05}

	for _, typ := range []Type{None, LZ4, ZSTD} {
		t.Run(typ.String(), func(t *testing.T) {
			for _, data := range [][]byte{compressible, random, {}} {
				block, err := Encode(data, typ)
				require.NoError(t, err)

				out, err := Decode(block, typ)
				require.NoError(t, err)
				assert.Equal(t, len(data), len(out))
				assert.True(t, bytes.Equal(data, out))
			}
		})
	}
}

func TestEncode_Compresses(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4}, 4096)

	for _, typ := range []Type{LZ4, ZSTD} {
		block, err := Encode(data, typ)
		require.NoError(t, err)
		assert.Less(t, len(block), len(data)/2, typ.String())
	}

	block, err := Encode(data, None)
	require.NoError(t, err)
	assert.Equal(t, headerSize+len(data), len(block))
}

func TestDecode_Corrupt(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3}, None)
	assert.ErrorIs(t, err, ErrCorrupt)

	// Header claims 100 raw bytes, only 2 present.
	_, err = Decode([]byte{100, 0, 0, 0, 0, 0, 0, 0, 1, 2}, None)
	assert.ErrorIs(t, err, ErrCorrupt)

	block, err := Encode(bytes.Repeat([]byte("abc"), 1000), ZSTD)
	require.NoError(t, err)
	_, err = Decode(block, None)
	assert.ErrorIs(t, err, ErrCorrupt)

	block[len(block)-1] ^= 0xff
	block[headerSize+2] ^= 0xff
	_, err = Decode(block, ZSTD)
	assert.Error(t, err)
}

func TestDecode_OversizedHeader(t *testing.T) {
	payload := []byte{0x10, 0x20, 0x30, 0x40}
	for _, typ := range []Type{LZ4, ZSTD} {
		t.Run(typ.String(), func(t *testing.T) {
			block := make([]byte, headerSize+len(payload))
			binary.LittleEndian.PutUint32(block[0:], 0xFFFFFFFF)
			binary.LittleEndian.PutUint32(block[4:], uint32(len(payload)))
			copy(block[headerSize:], payload)

			_, err := Decode(block, typ)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}

	// Within MaxBlockSize but beyond what 4 LZ4 bytes can expand to.
	block := make([]byte, headerSize+len(payload))
	binary.LittleEndian.PutUint32(block[0:], 1<<20)
	binary.LittleEndian.PutUint32(block[4:], uint32(len(payload)))
	copy(block[headerSize:], payload)
	_, err := Decode(block, LZ4)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{None, LZ4, ZSTD} {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
		assert.True(t, typ.Valid())
	}

	got, err := ParseType("")
	require.NoError(t, err)
	assert.Equal(t, None, got)

	_, err = ParseType("brotli")
	assert.Error(t, err)

	assert.False(t, Type(7).Valid())
	assert.Equal(t, "unknown(7)", Type(7).String())
}
