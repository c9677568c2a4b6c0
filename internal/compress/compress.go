// Package compress implements the block compression used by encoded tapes.
//
// A block is [UncompressedSize uint32][CompressedSize uint32][Data...], both
// sizes little-endian. CompressedSize 0 means Data is stored raw, which also
// happens whenever compression does not pay off.
package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type identifies a compression algorithm.
type Type uint8

const (
	// None stores blocks raw.
	None Type = 0
	// LZ4 favors speed.
	LZ4 Type = 1
	// ZSTD favors ratio.
	ZSTD Type = 2
)

const (
	// HeaderSize is the size of the block header in bytes.
	HeaderSize = 8

	// MaxBlockSize bounds the uncompressed size Unblock will allocate.
	MaxBlockSize = 1 << 28
)

var (
	// ErrUnknownType is returned for an unsupported Type or name.
	ErrUnknownType = errors.New("unknown compression type")
	// ErrCorruptBlock is returned when a block is truncated or inconsistent.
	ErrCorruptBlock = errors.New("corrupt compressed block")
)

// String returns the stable name of t.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compress.Type(%d)", uint8(t))
	}
}

// ParseType returns the Type with the given stable name.
func ParseType(name string) (Type, error) {
	switch name {
	case "none", "":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return ZSTD, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Valid reports whether t is a known Type.
func (t Type) Valid() bool { return t <= ZSTD }

// ZSTD encoder/decoder pools
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
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxBlockSize))
	return dec
}

// Block compresses data with t and prepends the block header.
func Block(data []byte, t Type) ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
	if len(data) > MaxBlockSize {
		return nil, fmt.Errorf("block of %d bytes exceeds %d", len(data), MaxBlockSize)
	}

	var compressed []byte
	switch t {
	case LZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		compressed = buf[:n] // n == 0: incompressible
	case ZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	}

	// Store raw unless compression saves at least 10%
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		out := make([]byte, HeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[HeaderSize:], data)
		return out, nil
	}

	out := make([]byte, HeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(compressed)))
	copy(out[HeaderSize:], compressed)
	return out, nil
}

// Unblock reverses Block. t must be the Type the block was written with.
func Unblock(block []byte, t Type) ([]byte, error) {
	if len(block) < HeaderSize {
		return nil, fmt.Errorf("%w: block too small for header", ErrCorruptBlock)
	}

	uncompressedSize := binary.LittleEndian.Uint32(block[0:])
	compressedSize := binary.LittleEndian.Uint32(block[4:])
	payload := block[HeaderSize:]

	if compressedSize == 0 {
		if uint64(len(payload)) != uint64(uncompressedSize) {
			return nil, fmt.Errorf("%w: raw size mismatch", ErrCorruptBlock)
		}
		return payload, nil
	}

	if uint64(len(payload)) != uint64(compressedSize) {
		return nil, fmt.Errorf("%w: compressed size mismatch", ErrCorruptBlock)
	}
	if uncompressedSize > MaxBlockSize {
		return nil, fmt.Errorf("%w: uncompressed size %d exceeds %d", ErrCorruptBlock, uncompressedSize, MaxBlockSize)
	}

	switch t {
	case LZ4:
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
		}
		if uint32(n) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
		}
		return result, nil

	case ZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: compressed block with type %s", ErrUnknownType, t)
	}
}
