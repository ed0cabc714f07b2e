package crypto

import (
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
)

const (
	saltLength = 16
	keyLength  = 32
)

// ErrMalformedHash is returned by Compare when the stored value is not a
// valid argon2id PHC string.
var ErrMalformedHash = errors.New("malformed password hash")

type argon2Hasher struct {
	params argon2id.Params
}

// NewPasswordHasher returns an argon2id [PasswordHasher] using the given
// memory cost in KiB, iteration count and parallelism. Salt and key lengths
// are fixed at 16 and 32 bytes.
func NewPasswordHasher(memoryKiB, iterations uint32, parallelism uint8) PasswordHasher {
	return &argon2Hasher{
		params: argon2id.Params{
			Memory:      memoryKiB,
			Iterations:  iterations,
			Parallelism: parallelism,
			SaltLength:  saltLength,
			KeyLength:   keyLength,
		},
	}
}

func (h *argon2Hasher) Hash(password string) (string, error) {
	p := h.params
	hash, err := argon2id.CreateHash(password, &p)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}

func (h *argon2Hasher) Compare(password, encodedHash string) (bool, error) {
	ok, err := argon2id.ComparePasswordAndHash(password, encodedHash)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	return ok, nil
}

func (h *argon2Hasher) NeedsRehash(encodedHash string) bool {
	stored, _, _, err := argon2id.DecodeHash(encodedHash)
	if err != nil {
		return true
	}
	return stored.Memory < h.params.Memory ||
		stored.Iterations < h.params.Iterations ||
		stored.Parallelism < h.params.Parallelism ||
		stored.KeyLength < h.params.KeyLength
}
