package password

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// Source supplies uniformly distributed integers in [0, n). Implementations
// returned by this package are safe for concurrent use.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the process-wide math/rand/v2 generator. It is not
// suitable where unpredictability matters; see NewCryptoSource.
func DefaultSource() Source {
	return globalSource{}
}

// lockedSource serializes access to a *rand.Rand, which on its own must not
// be shared between goroutines.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// NewSeededSource returns a deterministic source. Two sources built from the
// same seed produce the same sequence.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewCryptoSource returns a source backed by a ChaCha20 keystream keyed from
// crypto/rand.
func NewCryptoSource() (Source, error) {
	key := make([]byte, chacha20.KeySize)
	if _, err := crand.Read(key); err != nil {
		return nil, fmt.Errorf("reading chacha20 key: %w", err)
	}
	nonce := make([]byte, chacha20.NonceSize)
	if _, err := crand.Read(nonce); err != nil {
		return nil, fmt.Errorf("reading chacha20 nonce: %w", err)
	}

	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("creating chacha20 cipher: %w", err)
	}

	return &lockedSource{r: rand.New(&keystream{cipher: c})}, nil
}

// keystream adapts a ChaCha20 cipher to rand.Source. The cipher panics once
// its 256 GiB block counter is exhausted.
type keystream struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

func (k *keystream) Uint64() uint64 {
	clear(k.buf[:])
	k.cipher.XORKeyStream(k.buf[:], k.buf[:])
	return binary.LittleEndian.Uint64(k.buf[:])
}
