// Package tape records the values drawn from a bit source so that a run can
// be replayed exactly.
//
//	rec := tape.Record(rng.NewPCG32(seed, 0))
//	run(rec)                          // any producers, any number of draws
//	t := rec.Tape()
//
//	var buf bytes.Buffer
//	_ = tape.Encode(&buf, t, func(o *tape.Options) {
//	    o.Compression = tape.CompressionZSTD
//	})
//
//	t, _ = tape.Decode(&buf)
//	run(t.Replay())                   // same draws, then ErrSourceExhausted
//
// A replayed tape is finite: drawing past its end fails with
// rng.ErrSourceExhausted instead of inventing values.
//
// # Format
//
//	magic "SGTP" | version u8 | compression u8 |
//	codec name len u8 | codec name |
//	header len u32 | header (codec-encoded Meta and count) |
//	block len u32 | compressed block of little-endian uint32 values |
//	CRC32C u32 over all preceding bytes
//
// All integers are little-endian. The caller owns the reader and writer;
// the package never opens files.
package tape
