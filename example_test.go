package lz4_test

import (
	"fmt"

	"github.com/woozymasta/lz4"
)

func Example() {
	text := "She sells sea shells by the sea shore.\n" +
		"The shells she sells are surely seashells.\n" +
		"So if she sells shells on the seashore,\n" +
		"I'm sure she sells seashore shells.\n"

	block, err := lz4.Compress([]byte(text))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Encoded %d bytes as %d bytes\n", len(text), len(block))

	out, err := lz4.Decompress(block, lz4.DefaultDecompressOptions(len(text)))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Decoded %d bytes as %d bytes\n", len(block), len(out))
	fmt.Print(string(out))

	// Output:
	// Encoded 158 bytes as 114 bytes
	// Decoded 114 bytes as 158 bytes
	// She sells sea shells by the sea shore.
	// The shells she sells are surely seashells.
	// So if she sells shells on the seashore,
	// I'm sure she sells seashore shells.
}

func ExampleCompressInto() {
	data := []byte("hello hello hello hello hello")

	bound, err := lz4.CompressBound(len(data))
	if err != nil {
		panic(err)
	}

	dst := make([]byte, bound)
	n, err := lz4.CompressInto(dst, data)
	if err != nil {
		panic(err)
	}

	out, err := lz4.DecompressInto(dst[:n], make([]byte, len(data)))
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))

	// Output:
	// hello hello hello hello hello
}
