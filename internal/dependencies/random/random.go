package random

import (
	"crypto/rand"
	"math/big"
)

// Random is the injected source of nondeterminism for game ids and
// practice-word picks. Tests swap in a scripted implementation; the
// daily selector deliberately does not use it, since the word of the
// day must be reproducible from the date alone.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String returns a random string of length characters drawn from alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random on crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		return 0
	}
	return int(result.Int64())
}

// String returns a random string of length characters drawn from alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(out)
}
