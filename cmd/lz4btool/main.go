// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

// Command lz4btool encodes or decodes a single LZ4 block between stdin and
// stdout. The block format carries no decoded-size header, so -d requires
// the expected size via -n.
//
//	lz4btool -e < plain > block
//	lz4btool -d -n $(wc -c < plain) < block > plain
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/lz4"
)

var (
	enc = flag.Bool("e", false, "encode")
	dec = flag.Bool("d", false, "decode")
	num = flag.Int("n", -1, "decoded size in bytes (required with -d)")
)

func run() int {
	flag.Parse()
	if *enc == *dec {
		fmt.Fprintln(os.Stderr, "exactly one of -d or -e must be given")
		return 1
	}

	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var out []byte
	if *enc {
		out, err = lz4.Compress(src)
	} else {
		if *num < 0 {
			fmt.Fprintln(os.Stderr, "-d requires -n <decoded size>")
			return 1
		}
		out, err = lz4.Decompress(src, lz4.DefaultDecompressOptions(*num))
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if _, err := os.Stdout.Write(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
