// Package random provides the sampling capabilities the password generator
// draws on. Implementations differ only in where their integers come from.
package random

import (
	crand "crypto/rand"
	"errors"
	"io"
	"math/big"
	"math/rand/v2"
	"sync"
)

var (
	ErrEmptyPool     = errors.New("cannot draw from an empty pool")
	ErrNegativeCount = errors.New("draw count must not be negative")
)

// Source draws characters and permutes sequences.
type Source interface {
	// Choice returns one byte of pool chosen uniformly at random.
	Choice(pool string) (byte, error)
	// Choices returns k bytes of pool drawn uniformly with replacement.
	Choices(pool string, k int) ([]byte, error)
	// Shuffle applies a uniform random permutation to b in place.
	Shuffle(b []byte) error
}

// intner yields a uniform int in [0, n) for n > 0.
type intner interface {
	intN(n int) (int, error)
}

type sampler struct {
	r intner
}

func (s sampler) Choice(pool string) (byte, error) {
	if len(pool) == 0 {
		return 0, ErrEmptyPool
	}
	i, err := s.r.intN(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}

func (s sampler) Choices(pool string, k int) ([]byte, error) {
	if k < 0 {
		return nil, ErrNegativeCount
	}
	if k > 0 && len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	out := make([]byte, k)
	for i := range out {
		ch, err := s.Choice(pool)
		if err != nil {
			return nil, err
		}
		out[i] = ch
	}
	return out, nil
}

// Shuffle is a Fisher-Yates shuffle.
func (s sampler) Shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := s.r.intN(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// readerIntner draws from an entropy reader through math/big so the result
// carries no modulo bias.
type readerIntner struct {
	r io.Reader
}

func (ri readerIntner) intN(n int) (int, error) {
	v, err := crand.Int(ri.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// lockedRand serializes access to a math/rand generator, which is not safe
// for concurrent use on its own.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (lr *lockedRand) intN(n int) (int, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.r.IntN(n), nil
}

// Crypto returns a Source backed by crypto/rand. It is safe for concurrent use.
func Crypto() Source {
	return sampler{r: readerIntner{r: crand.Reader}}
}

// NewReader returns a Source drawing its entropy from r.
func NewReader(r io.Reader) Source {
	return sampler{r: readerIntner{r: r}}
}

// Seeded returns a deterministic PCG-backed Source. Intended for tests and
// reproducible runs, never for real credentials.
func Seeded(seed uint64) Source {
	return sampler{r: &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0xAA_BB_CC_DD))}}
}

// ChaCha8 returns a Source backed by a ChaCha8 stream keyed with seed.
func ChaCha8(seed [32]byte) Source {
	return sampler{r: &lockedRand{r: rand.New(rand.NewChaCha8(seed))}}
}

// CryptoSeeded returns a ChaCha8 Source keyed from crypto/rand.
func CryptoSeeded() (Source, error) {
	var seed [32]byte
	if _, err := io.ReadFull(crand.Reader, seed[:]); err != nil {
		return nil, err
	}
	return ChaCha8(seed), nil
}
