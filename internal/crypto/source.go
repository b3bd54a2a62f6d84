package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

// ErrInvalidBound is returned when a source is asked for a number in an empty range.
var ErrInvalidBound = errors.New("random bound must be positive")

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. It is the default for everything that
// produces secrets.
type CryptoSource struct{}

// Intn returns a uniform random int in [0, n) using crypto/rand.
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic ChaCha8 source. Two sources built from the
// same seed produce the same sequence.
type SeededSource struct {
	mu sync.Mutex
	r  *mathrand.Rand
}

// NewSeededSource returns a ChaCha8 source for the given 32-byte seed.
func NewSeededSource(seed [32]byte) *SeededSource {
	return &SeededSource{r: mathrand.New(mathrand.NewChaCha8(seed))}
}

// Intn returns a uniform random int in [0, n).
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n), nil
}

// pick returns a random byte from charset.
func pick(src Source, charset string) (byte, error) {
	i, err := src.Intn(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// shuffle performs a Fisher-Yates shuffle of data using src.
func shuffle(src Source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
