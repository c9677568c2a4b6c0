package tape

import (
	"errors"

	"github.com/hupe1980/seekgen/internal/compress"
	"github.com/hupe1980/seekgen/rng"
)

var (
	// ErrBadMagic is returned when the input is not a tape.
	ErrBadMagic = errors.New("not a tape")
	// ErrUnsupportedVersion is returned for tapes written by a newer format.
	ErrUnsupportedVersion = errors.New("unsupported tape version")
	// ErrChecksumMismatch is returned when the trailing checksum does not match.
	ErrChecksumMismatch = errors.New("tape checksum mismatch")
	// ErrUnknownCodec is returned when the header codec is not built in.
	ErrUnknownCodec = errors.New("unknown tape codec")
	// ErrCorrupt is returned for structurally invalid tapes.
	ErrCorrupt = errors.New("corrupt tape")
)

// Compression selects how the value block is compressed.
type Compression = compress.Type

// Compression types.
const (
	CompressionNone = compress.None
	CompressionLZ4  = compress.LZ4
	CompressionZSTD = compress.ZSTD
)

// ParseCompression returns the Compression with the given stable name
// ("none", "lz4" or "zstd"). The empty name selects CompressionNone.
func ParseCompression(name string) (Compression, error) {
	return compress.ParseType(name)
}

// Meta describes where the values of a tape came from.
type Meta struct {
	Algorithm string `json:"algorithm,omitempty"`
	Seed      uint64 `json:"seed"`
	Note      string `json:"note,omitempty"`
}

// Tape is a recorded sequence of 32-bit draws.
type Tape struct {
	Meta   Meta
	Values []uint32
}

// Len returns the number of recorded values.
func (t *Tape) Len() int { return len(t.Values) }

// Replay returns a finite source that hands out the recorded values in order.
func (t *Tape) Replay() *rng.Sequence {
	return rng.NewSequence(t.Values...)
}

// Recorder is a BitSource that records every value it passes through.
type Recorder struct {
	src    rng.BitSource
	meta   Meta
	values []uint32
}

var _ rng.BitSource = (*Recorder)(nil)

// Record wraps src. Optional meta is stored on the resulting tape.
func Record(src rng.BitSource, meta ...Meta) *Recorder {
	r := &Recorder{src: src}
	if len(meta) > 0 {
		r.meta = meta[0]
	}
	return r
}

// NextBits32 implements rng.BitSource.
func (r *Recorder) NextBits32() uint32 {
	v := r.src.NextBits32()
	r.values = append(r.values, v)
	return v
}

// Tape returns a copy of everything recorded so far.
func (r *Recorder) Tape() *Tape {
	return &Tape{
		Meta:   r.meta,
		Values: append([]uint32(nil), r.values...),
	}
}
