// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

// compressCore performs the greedy LZ4 block parse of src into dst and
// returns the number of bytes emitted. The caller has already verified
// len(dst) >= CompressBound(len(src)), so emission appends into dst[:0]
// without ever growing past its capacity.
//
// See https://github.com/lz4/lz4/blob/dev/doc/lz4_Block_format.md for "The
// last match must start at least 12 bytes before the end of block" and the
// other format rules the cursor limits below encode.
func compressCore(dst, src []byte) int {
	out := dst[:0]
	srcLen := len(src)
	literalStart := 0

	// Inputs of up to 12 bytes have no match-eligible region and become a
	// single literal run.
	if srcLen > minMatchSrcLen {
		matchLimit := srcLen - matchTailGuard
		finalLiteralsLimit := srcLen - literalTailGuard

		// hashTable maps 12-bit keys to source offsets. Each key, when set, is
		// the hash of the 4 bytes at its offset. The zero initialization aliases
		// every untouched slot to offset 0; the 4-byte equality check below
		// filters the resulting spurious candidates.
		var hashTable [hashTableSize]uint32

		sp := 0
	scan:
		for {
			// Start with 1-byte steps, accelerating while no matches turn up
			// (e.g. on binary data rather than text).
			step := 1
			stepCounter := 1 << 6

			// Start with a non-empty literal.
			nextSp := sp + 1
			nextHash := hashKey(peekLE32(src, nextSp))

			// Find a match or bail out to the final literals.
			var match int
			for {
				sp = nextSp
				nextSp += step
				step = stepCounter >> 6
				stepCounter++

				if nextSp > finalLiteralsLimit {
					break scan
				}

				slot := nextHash
				match = int(hashTable[slot])
				nextHash = hashKey(peekLE32(src, nextSp))
				hashTable[slot] = uint32(sp) //nolint:gosec // G115: offsets bounded by MaxCompressSrcLen

				if sp-match <= maxMatchOffset && peekLE32(src, sp) == peekLE32(src, match) {
					break
				}
			}

			// Extend the match backwards over bytes not yet committed as
			// literals.
			for sp > literalStart && match > 0 && src[sp-1] == src[match-1] {
				sp--
				match--
			}

			// Emit half of the token, encoding the literal length. The match
			// half is ORed in below once its length is known.
			token := len(out)
			out = appendLiteralRun(out, src[literalStart:sp])

			for {
				// Here sp is the start of the match's later copy, match the start
				// of its earlier copy, and out[token] the pending token byte.
				copyOff := sp - match
				out = append(out, byte(copyOff), byte(copyOff>>8))

				adjCopyLen := longestCommonPrefix(src, sp+minMatchLen, match+minMatchLen, matchLimit)
				if adjCopyLen < tokenMaxShortLen {
					out[token] |= byte(adjCopyLen)
				} else {
					out[token] |= 0x0F
					out = appendRunLength(out, adjCopyLen-tokenMaxShortLen)
				}

				sp += minMatchLen + adjCopyLen
				literalStart = sp
				if sp >= finalLiteralsLimit {
					break scan
				}

				// The scan skipped hashing everything inside the match, and the
				// minimum match length is 4; refresh one skipped position to
				// improve recall on the next pass.
				hashTable[hashKey(peekLE32(src, sp-2))] = uint32(sp - 2) //nolint:gosec // G115: offsets bounded by MaxCompressSrcLen

				// Check whether another match follows immediately. If not,
				// resume scanning with a fresh literal run.
				slot := hashKey(peekLE32(src, sp))
				oldOffset := hashTable[slot]
				newOffset := uint32(sp) //nolint:gosec // G115: offsets bounded by MaxCompressSrcLen
				hashTable[slot] = newOffset
				match = int(oldOffset)

				if newOffset-oldOffset > maxMatchOffset || peekLE32(src, sp) != peekLE32(src, match) {
					continue scan
				}

				// Zero-literal token for the back-to-back match.
				token = len(out)
				out = append(out, 0)
			}
		}
	}

	out = appendLiteralRun(out, src[literalStart:])
	return len(out)
}

// appendLiteralRun appends a literal-length token byte (high nibble, with
// 255-run extension when needed) followed by the literal bytes themselves.
func appendLiteralRun(out []byte, lit []byte) []byte {
	if len(lit) < tokenMaxShortLen {
		out = append(out, byte(len(lit))<<4)
	} else {
		out = append(out, 0xF0)
		out = appendRunLength(out, len(lit)-tokenMaxShortLen)
	}

	return append(out, lit...)
}

// appendRunLength appends n as a 255-run: 0xFF for each full 255, then the
// remainder byte (which may be 0).
func appendRunLength(out []byte, n int) []byte {
	for ; n >= 255; n -= 255 {
		out = append(out, 0xFF)
	}

	return append(out, byte(n))
}
