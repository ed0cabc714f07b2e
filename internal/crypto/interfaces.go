// Package crypto hashes and verifies stored account passwords.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing PHC strings
// ("$argon2id$v=19$m=...,t=...,p=...$salt$key") and checks candidates
// against them. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted PHC hash of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches encodedHash. A malformed hash
	// is an error, a mismatch is (false, nil).
	Compare(password, encodedHash string) (bool, error)

	// NeedsRehash reports whether encodedHash was produced with weaker
	// parameters than the hasher's current ones, or cannot be decoded.
	NeedsRehash(encodedHash string) bool
}
