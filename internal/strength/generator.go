package strength

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	// DefaultGeneratedLength is the length used when none is requested.
	DefaultGeneratedLength = 16

	// MinGeneratedLength is the shortest password the generator produces:
	// one character from each of the four classes. Shorter requests are
	// raised to this length.
	MinGeneratedLength = 4

	// MaxGeneratedLength caps requests coming from untrusted callers.
	MaxGeneratedLength = 256
)

const (
	upperSet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerSet   = "abcdefghijklmnopqrstuvwxyz"
	digitSet   = "0123456789"
	specialSet = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	fullSet    = upperSet + lowerSet + digitSet + specialSet
)

// Generator produces random passwords that contain every character class.
type Generator struct {
	random io.Reader
}

// NewGenerator returns a Generator reading randomness from r. A nil r
// selects crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{random: r}
}

var defaultGenerator = NewGenerator(nil)

// GenerateSecurePassword returns a random password of the given length drawn
// from crypto/rand. Lengths below [MinGeneratedLength] are raised to it.
func GenerateSecurePassword(length int) (string, error) {
	return defaultGenerator.Generate(length)
}

// Generate returns a random password of max(length, MinGeneratedLength)
// characters. One character of each class is placed first, the rest are drawn
// uniformly from the full set and the whole result is shuffled.
func (g *Generator) Generate(length int) (string, error) {
	length = max(length, MinGeneratedLength)

	out := make([]byte, 0, length)
	for _, set := range []string{upperSet, lowerSet, digitSet, specialSet} {
		c, err := g.pick(set)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	for len(out) < length {
		c, err := g.pick(fullSet)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Fisher-Yates
	for i := len(out) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

func (g *Generator) pick(set string) (byte, error) {
	i, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEntropySource, err)
	}
	return int(v.Int64()), nil
}
