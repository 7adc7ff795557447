package entropy

import (
	"crypto/rand"
	"io"
)

// ReadFunc fills p with bytes from crypto/rand. Override in tests to simulate
// an unavailable source.
var ReadFunc = func(p []byte) error {
	_, err := io.ReadFull(rand.Reader, p)
	return err
}

// Read is a thin wrapper around ReadFunc.
func Read(p []byte) error { return ReadFunc(p) }
