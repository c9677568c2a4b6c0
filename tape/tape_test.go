package tape

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seekgen/codec"
	"github.com/hupe1980/seekgen/internal/compress"
	"github.com/hupe1980/seekgen/internal/hash"
	"github.com/hupe1980/seekgen/rng"
	"github.com/hupe1980/seekgen/testutil"
)

func record(t *testing.T, n int) *Tape {
	t.Helper()

	rec := Record(rng.NewPCG32(4711, 1), Meta{Algorithm: rng.AlgorithmPCG32, Seed: 4711, Note: "test"})
	out := make([]bool, n)
	rng.Fill[bool](rec, rng.Bool{}, out)

	tp := rec.Tape()
	require.Equal(t, n, tp.Len())
	return tp
}

func TestRecordReplay(t *testing.T) {
	rec := Record(rng.NewPCG32(42, 54))
	want := make([]float64, 8)
	rng.Fill[float64](rec, rng.Float64{}, want)

	replay := rec.Tape().Replay()
	got := make([]float64, 8)
	rng.Fill[float64](replay, rng.Float64{}, got)

	assert.Equal(t, want, got)

	_, err := rng.TryGenerate[bool](replay, rng.Bool{})
	assert.ErrorIs(t, err, rng.ErrSourceExhausted)
}

func TestRecorderTapeIsCopy(t *testing.T) {
	rec := Record(rng.Repeat(1, 2, 3))
	rec.NextBits32()

	tp := rec.Tape()
	rec.NextBits32()

	assert.Equal(t, []uint32{1}, tp.Values)
	assert.Equal(t, 2, rec.Tape().Len())
}

func TestEncodeDecode(t *testing.T) {
	src := record(t, 1000)

	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		for _, ct := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
			t.Run(c.Name()+"/"+ct.String(), func(t *testing.T) {
				var buf bytes.Buffer
				err := Encode(&buf, src, func(o *Options) {
					o.Codec = c
					o.Compression = ct
				})
				require.NoError(t, err)

				got, err := Decode(&buf)
				require.NoError(t, err)
				assert.Equal(t, src.Meta, got.Meta)
				assert.Equal(t, src.Values, got.Values)
			})
		}
	}
}

func TestEncodeDecodeRandomValues(t *testing.T) {
	r := testutil.NewRNG(7)

	for _, name := range []string{"none", "lz4", "zstd"} {
		ct, err := ParseCompression(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				src := &Tape{Meta: Meta{Seed: uint64(r.Seed())}, Values: r.Uint32s(r.Intn(300))}

				var buf bytes.Buffer
				require.NoError(t, Encode(&buf, src, func(o *Options) { o.Compression = ct }))

				got, err := Decode(&buf)
				require.NoError(t, err)
				assert.Equal(t, src.Values, got.Values)
			}
		})
	}
}

func TestParseCompression(t *testing.T) {
	ct, err := ParseCompression("")
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, ct)

	ct, err = ParseCompression("zstd")
	require.NoError(t, err)
	assert.Equal(t, CompressionZSTD, ct)

	_, err = ParseCompression("brotli")
	assert.ErrorIs(t, err, compress.ErrUnknownType)
}

// build assembles an encoded tape from raw parts with a valid checksum.
func build(codecName, hdr string, block []byte) []byte {
	b := []byte(magic)
	b = append(b, version, byte(CompressionNone), byte(len(codecName)))
	b = append(b, codecName...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(hdr)))
	b = append(b, hdr...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(block)))
	b = append(b, block...)
	return binary.LittleEndian.AppendUint32(b, hash.CRC32C(b))
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &Tape{}))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestCompressionShrinksRepetitiveTapes(t *testing.T) {
	tp := &Tape{Values: make([]uint32, 4096)}
	for i := range tp.Values {
		tp.Values[i] = uint32(i % 4)
	}

	var plain, packed bytes.Buffer
	require.NoError(t, Encode(&plain, tp))
	require.NoError(t, Encode(&packed, tp, func(o *Options) { o.Compression = CompressionZSTD }))

	assert.Less(t, packed.Len(), plain.Len()/4)
}

func TestDecodeErrors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, record(t, 16)))
	good := buf.Bytes()

	mutate := func(fn func(b []byte) []byte) []byte {
		return fn(append([]byte(nil), good...))
	}

	four, err := compress.Block([]byte{1, 2, 3, 4}, compress.None)
	require.NoError(t, err)
	three, err := compress.Block([]byte{1, 2, 3}, compress.None)
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrBadMagic},
		{"wrong magic", mutate(func(b []byte) []byte { b[0] = 'X'; return b }), ErrBadMagic},
		{"future version", mutate(func(b []byte) []byte { b[4] = 9; return b }), ErrUnsupportedVersion},
		{"flipped bit", mutate(func(b []byte) []byte { b[len(b)/2] ^= 1; return b }), ErrChecksumMismatch},
		{"truncated", good[:len(good)-6], ErrChecksumMismatch},
		{"valid layout", build("json", `{"count":1}`, four), nil},
		{"unknown codec", build("msgpack", `{"count":1}`, four), ErrUnknownCodec},
		{"unknown header field", build("json", `{"count":1,"extra":2}`, four), ErrCorrupt},
		{"negative count", build("json", `{"count":-1}`, four), ErrCorrupt},
		{"count too large", build("json", `{"count":2}`, four), ErrCorrupt},
		{"count overflows byte length", build("go-json", `{"count":4611686018427387905}`, four), ErrCorrupt},
		{"partial value", build("json", `{"count":0}`, three), ErrCorrupt},
		{"block size mismatch", build("json", `{"count":1}`, append(four, 0)), ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(tt.data))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
