// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// peekLE32 reads the 4-byte little-endian word at b[pos:]. Callers guarantee
// pos+4 <= len(b).
func peekLE32(b []byte, pos int) uint32 {
	return binary.LittleEndian.Uint32(b[pos:])
}

// hashKey maps a 4-byte window value to a hash-table slot.
func hashKey(x uint32) uint32 {
	return (x * hashMul) >> hashShift
}

// longestCommonPrefix returns the largest k such that b[p:p+k] == b[q:q+k]
// and p+k <= pLimit. The q side is never the shorter one: q < p by
// construction, so q+k stays in bounds whenever p+k does.
func longestCommonPrefix(b []byte, p, q, pLimit int) int {
	start := p
	n := pLimit - p
	for n >= 4 && peekLE32(b, p) == peekLE32(b, q) {
		p += 4
		q += 4
		n -= 4
	}

	for n > 0 && b[p] == b[q] {
		p++
		q++
		n--
	}

	return p - start
}
