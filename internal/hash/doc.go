// Package hash provides the checksum used by encoded tapes.
//
// Tapes end with a CRC32-Castagnoli (CRC32C) checksum over every preceding
// byte. Go's hash/crc32 uses hardware instructions for this polynomial when
// available (SSE4.2 on x86, the CRC extension on ARM).
//
// For one-shot checksums:
//
//	checksum := hash.CRC32C(data)
//
// For streaming checksums:
//
//	h := hash.NewCRC32C()
//	w := io.MultiWriter(dst, h)
//	checksum := h.Sum32()
package hash
