package tape

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/seekgen/codec"
	"github.com/hupe1980/seekgen/internal/compress"
	"github.com/hupe1980/seekgen/internal/conv"
	"github.com/hupe1980/seekgen/internal/hash"
)

const (
	magic   = "SGTP"
	version = 1

	// fixed prefix: magic, version, compression, codec name length
	prefixSize   = len(magic) + 3
	checksumSize = 4
)

// Options configures Encode.
type Options struct {
	// Codec encodes the header. Defaults to codec.Default.
	Codec codec.Codec

	// Compression of the value block. Defaults to CompressionNone.
	Compression Compression
}

type header struct {
	Meta
	Count int `json:"count"`
}

// Encode writes t to w.
func Encode(w io.Writer, t *Tape, optFns ...func(*Options)) error {
	opts := Options{Codec: codec.Default}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}

	name := opts.Codec.Name()
	if len(name) > 255 {
		return fmt.Errorf("%w: codec name too long", ErrUnknownCodec)
	}

	hdr, err := opts.Codec.Marshal(header{Meta: t.Meta, Count: len(t.Values)})
	if err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	hdrLen, err := conv.IntToUint32(len(hdr))
	if err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	raw := make([]byte, 4*len(t.Values))
	for i, v := range t.Values {
		binary.LittleEndian.PutUint32(raw[4*i:], v)
	}
	block, err := compress.Block(raw, opts.Compression)
	if err != nil {
		return fmt.Errorf("encode values: %w", err)
	}
	blockLen, err := conv.IntToUint32(len(block))
	if err != nil {
		return fmt.Errorf("encode values: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.WriteByte(version)
	buf.WriteByte(byte(opts.Compression))
	buf.WriteByte(byte(len(name)))
	buf.WriteString(name)
	buf.Write(binary.LittleEndian.AppendUint32(nil, hdrLen))
	buf.Write(hdr)
	buf.Write(binary.LittleEndian.AppendUint32(nil, blockLen))
	buf.Write(block)
	buf.Write(binary.LittleEndian.AppendUint32(nil, hash.CRC32C(buf.Bytes())))

	_, err = w.Write(buf.Bytes())
	return err
}

// Decode reads a tape written by Encode from r.
func Decode(r io.Reader) (*Tape, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(data) < prefixSize+checksumSize || string(data[:len(magic)]) != magic {
		return nil, ErrBadMagic
	}
	if v := data[len(magic)]; v != version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	body, sum := data[:len(data)-checksumSize], data[len(data)-checksumSize:]
	if hash.CRC32C(body) != binary.LittleEndian.Uint32(sum) {
		return nil, ErrChecksumMismatch
	}

	ct := compress.Type(data[len(magic)+1])
	if !ct.Valid() {
		return nil, fmt.Errorf("%w: compression %d", ErrCorrupt, uint8(ct))
	}

	p := &parser{data: body, off: len(magic) + 2}

	nameLen := int(p.readByte())
	name := string(p.read(nameLen))
	c, err := codec.Lookup(name)
	if err != nil && p.err == nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownCodec, err)
	}

	hdrBytes := p.read(p.readLen())
	block := p.read(p.readLen())
	if p.err != nil {
		return nil, p.err
	}
	if p.off != len(body) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(body)-p.off)
	}

	var hdr header
	if err := c.Unmarshal(hdrBytes, &hdr); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrCorrupt, err)
	}

	raw, err := compress.Unblock(block, ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if hdr.Count < 0 || len(raw)%4 != 0 || hdr.Count != len(raw)/4 {
		return nil, fmt.Errorf("%w: header count %d does not match %d value bytes", ErrCorrupt, hdr.Count, len(raw))
	}

	values := make([]uint32, hdr.Count)
	for i := range values {
		values[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}

	return &Tape{Meta: hdr.Meta, Values: values}, nil
}

// parser reads length-prefixed sections, remembering the first error.
type parser struct {
	data []byte
	off  int
	err  error
}

func (p *parser) read(n int) []byte {
	if p.err != nil {
		return nil
	}
	if n < 0 || n > len(p.data)-p.off {
		p.err = fmt.Errorf("%w: truncated at offset %d", ErrCorrupt, p.off)
		return nil
	}
	b := p.data[p.off : p.off+n]
	p.off += n
	return b
}

func (p *parser) readByte() byte {
	b := p.read(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (p *parser) readLen() int {
	b := p.read(4)
	if b == nil {
		return 0
	}
	n, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(b))
	if err != nil {
		p.err = fmt.Errorf("%w: %w", ErrCorrupt, err)
		return 0
	}
	return n
}
