// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrDstTooShort is returned when the destination buffer cannot hold the
	// output: for CompressInto, when it is smaller than CompressBound of the
	// source length; for decompression, when the decoded stream outgrows it.
	ErrDstTooShort = errors.New("dst is too short")
	// ErrInvalidData is returned when the decoder encounters a malformed LZ4
	// block: a truncated token or extension run, a missing offset, a zero
	// offset, or an offset pointing before the start of the output.
	ErrInvalidData = errors.New("invalid data")
	// ErrSrcTooLong is returned when the source exceeds the supported input
	// length (MaxCompressSrcLen for compression, MaxDecompressSrcLen for
	// decompression).
	ErrSrcTooLong = errors.New("src is too long")

	// ErrOptionsRequired is returned when Decompress is called with nil options
	// (OutLen is required) or a negative OutLen.
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than
	// MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
