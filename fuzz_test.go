package lz4

import (
	"bytes"
	"testing"
)

func FuzzDecompressInto(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0x00, 0x00, 0x00})
	f.Add([]byte{0x1F, 'a', 0x01, 0x00, 0x51, 0x00})
	f.Add(seaShellsBlock)

	f.Fuzz(func(t *testing.T, data []byte) {
		dst := make([]byte, 4*len(data)+64)

		// Arbitrary bytes must either decode or fail with one of the codec
		// errors; they must never panic or write outside dst.
		out, err := DecompressInto(data, dst)
		if err != nil {
			return
		}
		if len(out) > len(dst) {
			t.Fatalf("decoded %d bytes into a %d-byte buffer", len(out), len(dst))
		}
	})
}

func FuzzCompressRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("hello world, lz4 test"))
	f.Add(bytes.Repeat([]byte{'a'}, 28))
	f.Add([]byte(seaShells))

	f.Fuzz(func(t *testing.T, data []byte) {
		cmp, err := Compress(data)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		bound, err := CompressBound(len(data))
		if err != nil {
			t.Fatalf("CompressBound failed: %v", err)
		}
		if len(cmp) > bound {
			t.Fatalf("compressed length %d exceeds bound %d", len(cmp), bound)
		}

		out, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
