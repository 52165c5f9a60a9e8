// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

// LZ4 block format constants: token layout, match bounds, and the hash
// parameters used by the fast compressor.

// Supported input-size bounds. The block format itself permits longer inputs;
// these caps keep all internal length accumulators comfortably bounded.
const (
	// MaxCompressSrcLen is the maximum (inclusive) source length accepted by
	// Compress and CompressInto.
	MaxCompressSrcLen = 0x7E000000
	// MaxDecompressSrcLen is the maximum (inclusive) source length accepted by
	// the decompression functions. Compressing close to MaxCompressSrcLen
	// bytes can produce a block longer than this; such a block is valid LZ4
	// but not decodable by this package.
	MaxDecompressSrcLen = 0x00FFFFFF
)

// Token layout: the high nibble is the base literal-run length, the low
// nibble the base match length. A nibble of 15 is extended by a run of
// bytes, each adding 0..255, terminated by the first byte below 255.
const (
	tokenMaxShortLen = 15
	minMatchLen      = 4
	maxMatchOffset   = 0xFFFF
)

// An LZ4 match may not start within the last 12 bytes of the block, and a
// match's last byte may not fall within the last 5. Inputs of up to 12 bytes
// are therefore emitted as a single literal run with no matcher pass.
const (
	matchTailGuard   = 5
	literalTailGuard = 11
	minMatchSrcLen   = 12
)

// Hash parameters for the compressor's match-finder table: 4096 entries of
// 32-bit source offsets, keyed by a multiplicative hash of 4 bytes.
const (
	hashTableBits = 12
	hashTableSize = 1 << hashTableBits
	hashShift     = 32 - hashTableBits
	hashMul       = 2654435761 // Knuth's magic constant
)
