// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

// copyLiteralRun copies n bytes from src[*inPos:] to dst[*outPos:] and
// advances both cursors. Source underflow is malformed data; destination
// underflow means the caller's buffer is too small for the decoded stream.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if n == 0 {
		return nil
	}

	if n > len(src)-*inPos {
		return ErrInvalidData
	}

	if n > len(dst)-*outPos {
		return ErrDstTooShort
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}

// copyBackRef copies length bytes from dst[outPos-dist:] to dst[outPos:].
// The caller has already validated 1 <= dist <= outPos. If dist < length,
// source and destination overlap; the copy must then be byte-by-byte so that
// repeated bytes (RLE) come out right — the built-in copy does not handle
// overlapping regions where src precedes dst.
func copyBackRef(dst []byte, outPos, dist, length int) error {
	if length > len(dst)-outPos {
		return ErrDstTooShort
	}

	from := outPos - dist
	if dist >= length {
		copy(dst[outPos:outPos+length], dst[from:from+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[outPos+i] = dst[from+i]
	}

	return nil
}

// readExtendedLen accumulates a 255-run length extension onto base: each
// byte adds its value, and the first byte below 255 ends the run. Running
// out of input mid-run is malformed data.
func readExtendedLen(src []byte, inPos *int, base int) (int, error) {
	for {
		if *inPos >= len(src) {
			return 0, ErrInvalidData
		}

		b := src[*inPos]
		*inPos++
		base += int(b)

		if b != 255 {
			return base, nil
		}
	}
}
