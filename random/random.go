// Package random provides the sources password characters are drawn from.
package random

import (
	crand "crypto/rand"
	"crypto/sha256"
	"io"
	"math/big"
	"math/rand/v2"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// Source returns uniformly distributed integers in [0, n).
// Implementations panic if n <= 0, as math/rand/v2 does.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Global returns a source backed by the math/rand/v2 top-level functions.
// It is safe for concurrent use.
func Global() Source {
	return globalSource{}
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}
	return int(v.Int64())
}

// Crypto returns a source reading from crypto/rand. It is safe for concurrent use.
func Crypto() Source {
	return cryptoSource{}
}

// ChaCha returns a ChaCha8 generator seeded from crypto/rand.
// The result is not safe for concurrent use; wrap it with Locked to share it.
func ChaCha() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(err)
	}
	return rand.New(rand.NewChaCha8(seed))
}

// Seeded returns a deterministic ChaCha8 generator. Its seed is derived with
// HKDF-SHA256 from secret, using realm as the context label, so equal inputs
// always yield the same sequence and different realms yield unrelated ones.
func Seeded(secret, realm string) *rand.Rand {
	var seed [32]byte
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte(realm))
	if _, err := io.ReadFull(kdf, seed[:]); err != nil {
		panic(err)
	}
	return rand.New(rand.NewChaCha8(seed))
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// Locked serializes access to src so it can be shared between goroutines.
func Locked(src Source) Source {
	return &lockedSource{src: src}
}
