// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// openInput opens path for reading; "-" is stdin. A .zst suffix selects
// zstd decompression. Closing the result closes everything it opened.
func openInput(path string) (io.ReadCloser, error) {
	var f *os.File
	if path == "-" {
		f = os.Stdin
	} else {
		var err error
		if f, err = os.Open(path); err != nil {
			return nil, err
		}
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &zstdInput{dec: dec, f: f}, nil
}

type zstdInput struct {
	dec *zstd.Decoder
	f   *os.File
}

func (z *zstdInput) Read(p []byte) (int, error) { return z.dec.Read(p) }

func (z *zstdInput) Close() error {
	z.dec.Close()
	return z.f.Close()
}
