// Package conv provides checked integer conversions.
//
// Lengths and counts cross the int/uint32 boundary when tapes are encoded
// and decoded. These helpers fail with ErrOverflow instead of truncating.
package conv
