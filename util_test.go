package main

import (
	"encoding/hex"
	"io"
	"os"
	"strings"
	"testing"

	"jayconrod.com/cryptanalysis/crypto"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func readBase64File(t *testing.T, path string) []byte {
	t.Helper()
	data, err := crypto.ReadBase64File(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func randomBytes(t *testing.T, r io.Reader, n int) []byte {
	t.Helper()
	b, err := crypto.ReadRandom(r, n)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// hexLines encodes each buffer as a line of hex.
func hexLines(bufs [][]byte) string {
	var b strings.Builder
	for _, buf := range bufs {
		b.WriteString(hex.EncodeToString(buf))
		b.WriteByte('\n')
	}
	return b.String()
}
