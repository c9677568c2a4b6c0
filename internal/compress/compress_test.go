package compress

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	repetitive := bytes.Repeat([]byte("asdf "), 1000)
	random := make([]byte, 512)
	for i := range random {
		random[i] = byte(i*7919 + i*i*31)
	}

	for _, typ := range []Type{None, LZ4, ZSTD} {
		t.Run(typ.String(), func(t *testing.T) {
			for _, data := range [][]byte{repetitive, random, {}} {
				block, err := Block(data, typ)
				require.NoError(t, err)

				got, err := Unblock(block, typ)
				require.NoError(t, err)
				assert.Equal(t, len(data), len(got))
				assert.True(t, bytes.Equal(data, got))
			}
		})
	}
}

func TestCompressesRepetitiveData(t *testing.T) {
	data := bytes.Repeat([]byte{1, 0, 0, 0}, 4096)

	for _, typ := range []Type{LZ4, ZSTD} {
		block, err := Block(data, typ)
		require.NoError(t, err)
		assert.Less(t, len(block), len(data)/2, typ.String())
		assert.NotZero(t, binary.LittleEndian.Uint32(block[4:]))
	}

	block, err := Block(data, None)
	require.NoError(t, err)
	assert.Equal(t, HeaderSize+len(data), len(block))
	assert.Zero(t, binary.LittleEndian.Uint32(block[4:]))
}

func TestUnblockCorrupt(t *testing.T) {
	_, err := Unblock([]byte{1, 2, 3}, None)
	assert.ErrorIs(t, err, ErrCorruptBlock)

	block, err := Block(bytes.Repeat([]byte("x"), 100), ZSTD)
	require.NoError(t, err)

	_, err = Unblock(block[:len(block)-1], ZSTD)
	assert.ErrorIs(t, err, ErrCorruptBlock)
}

func TestUnblockRejectsOversizedHeader(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}

	for _, typ := range []Type{LZ4, ZSTD} {
		t.Run(typ.String(), func(t *testing.T) {
			block := binary.LittleEndian.AppendUint32(nil, MaxBlockSize+1)
			block = binary.LittleEndian.AppendUint32(block, uint32(len(payload)))
			block = append(block, payload...)

			_, err := Unblock(block, typ)
			assert.ErrorIs(t, err, ErrCorruptBlock)
			assert.ErrorContains(t, err, "exceeds")
		})
	}
}

func TestUnblockZSTDSizeMismatch(t *testing.T) {
	data := bytes.Repeat([]byte("asdf "), 200)
	block, err := Block(data, ZSTD)
	require.NoError(t, err)
	require.NotZero(t, binary.LittleEndian.Uint32(block[4:]))

	binary.LittleEndian.PutUint32(block[0:], uint32(len(data)+1))
	_, err = Unblock(block, ZSTD)
	assert.ErrorIs(t, err, ErrCorruptBlock)
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{None, LZ4, ZSTD} {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := ParseType("brotli")
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = Block(nil, Type(9))
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Equal(t, "compress.Type(9)", Type(9).String())
}
