// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package lz4 implements the LZ4 block compression format: a symmetric pair of
whole-buffer compress/decompress operations, without the LZ4 frame layer
(no magic bytes, checksums, or content-size headers).

Output is decodable by any conformant LZ4 block decoder, and the decoder
accepts any block produced by the reference encoder within this package's
input-size bounds (MaxDecompressSrcLen). The encoder is the fast greedy
parser: a single 4096-entry hash table with an accelerating skip over
incompressible regions.

# Decompress

The block format does not record the decompressed size, so OutLen is
required (use DecompressOptions). From a byte slice:

	out, err := lz4.Decompress(compressed, lz4.DefaultDecompressOptions(expectedLen))

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := lz4.DecompressInto(compressed, dst)

From an io.Reader (e.g. a blob store object with known decoded size):

	out, err := lz4.DecompressFromReader(r, lz4.DefaultDecompressOptions(expectedLen))

# Compress

Compress allocates a worst-case buffer and returns the trimmed result:

	out, err := lz4.Compress(data)

CompressInto writes into a caller buffer, which must hold at least
CompressBound(len(src)) bytes. The bound is checked before any compression
work, so a too-short destination fails even when the compressed form would
have fit:

	bound, err := lz4.CompressBound(len(data))
	dst := make([]byte, bound)
	n, err := lz4.CompressInto(dst, data)
*/
package lz4
