package zid

import (
	"io"
	"sync"

	"github.com/viant/zid/internal/entropy"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// Source fills p entirely with secure random bytes or returns an error.
// Implementations must be safe for concurrent use.
type Source interface {
	Read(p []byte) error
}

// SourceFunc adapts a function to Source.
type SourceFunc func(p []byte) error

// Read calls f(p).
func (f SourceFunc) Read(p []byte) error { return f(p) }

// CryptoSource reads from the operating system's secure random pool
// (crypto/rand). It is the default Source.
type CryptoSource struct{}

// Read fills p from crypto/rand.
func (CryptoSource) Read(p []byte) error { return entropy.Read(p) }

// ReaderSource adapts an io.Reader. A short read is an error.
type ReaderSource struct {
	Reader io.Reader
}

// Read fills p from the wrapped reader; a nil reader always fails.
func (s ReaderSource) Read(p []byte) error {
	if s.Reader == nil {
		return io.ErrUnexpectedEOF
	}
	_, err := io.ReadFull(s.Reader, p)
	return err
}

// SeededSource is a deterministic ChaCha20 keystream keyed by a seed. Equal
// seeds produce equal byte streams, which makes it suitable for reproducible
// tests and fixtures. Never use it for identifiers that must be unguessable.
type SeededSource struct {
	mux    sync.Mutex
	cipher *chacha20.Cipher
}

// NewSeededSource returns a SeededSource keyed by the BLAKE2b-256 digest of seed.
func NewSeededSource(seed []byte) (*SeededSource, error) {
	key := blake2b.Sum256(seed)
	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		return nil, err
	}
	return &SeededSource{cipher: cipher}, nil
}

// Read fills p with the next len(p) keystream bytes.
func (s *SeededSource) Read(p []byte) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	for i := range p {
		p[i] = 0
	}
	s.cipher.XORKeyStream(p, p)
	return nil
}
