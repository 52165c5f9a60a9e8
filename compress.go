// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

// CompressBound returns the maximum (inclusive) number of bytes that
// compressing srcLen input bytes can produce. Returns ErrSrcTooLong if
// srcLen exceeds MaxCompressSrcLen.
func CompressBound(srcLen int) (int, error) {
	if srcLen < 0 || srcLen > MaxCompressSrcLen {
		return 0, ErrSrcTooLong
	}

	// For srcLen <= 0x7E000000 the bound is at most 0x7E7E7E8E, so the
	// arithmetic below cannot overflow.
	return srcLen + srcLen/255 + 16, nil
}

// Compress compresses src as one LZ4 block and returns the result in a
// freshly allocated slice.
func Compress(src []byte) ([]byte, error) {
	bound, err := CompressBound(len(src))
	if err != nil {
		return nil, err
	}

	dst := make([]byte, bound)
	return dst[:compressCore(dst, src)], nil
}

// CompressInto compresses src as one LZ4 block into dst and returns the
// number of bytes written. dst must hold at least CompressBound(len(src))
// bytes; unlike the reference LZ4_compress_default, a smaller dst fails with
// ErrDstTooShort up front even when the actual compressed form would have
// fit. The pre-check keeps destination bounds checks out of the hot path.
func CompressInto(dst, src []byte) (int, error) {
	bound, err := CompressBound(len(src))
	if err != nil {
		return 0, err
	}

	if bound > len(dst) {
		return 0, ErrDstTooShort
	}

	return compressCore(dst, src), nil
}
