// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

// DecompressOptions configures decompression.
// OutLen is required (expected decompressed size); MaxInputSize limits reads
// when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the expected decompressed size (required: the LZ4 block format
	// does not record it).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and
// no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}
