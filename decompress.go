// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

// Decompress decompresses an LZ4 block from src into a buffer of length
// opts.OutLen. Returns ErrOptionsRequired if opts is nil (the block format
// does not record the decoded size, so OutLen is required). On success
// returns the decoded slice (length may be less than OutLen).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, ErrOptionsRequired
	}

	dst := make([]byte, opts.OutLen)
	n, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decompresses an LZ4 block from src into dst and returns the
// decoded prefix dst[:n]. No allocation; dst must be at least as long as the
// decoded stream or ErrDstTooShort is returned.
func DecompressInto(src, dst []byte) ([]byte, error) {
	n, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// decompressCore runs the block decoder state machine over src, writing
// decoded bytes starting at dst[0]. It returns the number of bytes written,
// or 0 and an error. See https://github.com/lz4/lz4/blob/dev/doc/lz4_Block_format.md
// for the token bit patterns.
func decompressCore(src, dst []byte) (int, error) {
	if len(src) > MaxDecompressSrcLen {
		return 0, ErrSrcTooLong
	}

	var (
		inPos  int
		outPos int
		err    error
	)

	for inPos < len(src) {
		token := src[inPos]
		inPos++

		literalLen := int(token >> 4)
		if literalLen == tokenMaxShortLen {
			literalLen, err = readExtendedLen(src, &inPos, literalLen)
			if err != nil {
				return 0, err
			}
		}

		if err := copyLiteralRun(src, &inPos, dst, &outPos, literalLen); err != nil {
			return 0, err
		}

		// A block ends with a literals-only sequence; exhausting the source
		// right after a literal run is the only successful exit.
		if inPos == len(src) {
			return outPos, nil
		}

		if len(src)-inPos < 2 {
			return 0, ErrInvalidData
		}

		copyOff := int(src[inPos]) | int(src[inPos+1])<<8
		inPos += 2
		// Validate against bytes actually produced so far, not the buffer
		// capacity: a back-reference may never read uninitialized output.
		if copyOff == 0 || copyOff > outPos {
			return 0, ErrInvalidData
		}

		copyLen := int(token&0x0F) + minMatchLen
		if copyLen == tokenMaxShortLen+minMatchLen {
			copyLen, err = readExtendedLen(src, &inPos, copyLen)
			if err != nil {
				return 0, err
			}
		}

		if err := copyBackRef(dst, outPos, copyOff, copyLen); err != nil {
			return 0, err
		}

		outPos += copyLen
	}

	// Empty source, or a stream whose last sequence carried a match: no final
	// literals-only sequence was seen.
	return 0, ErrInvalidData
}
