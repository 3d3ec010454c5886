package ports

// PasswordHasher provides one-way hashing and verification of credentials.
type PasswordHasher interface {
	// Hash produces a salted, one-way hash of plaintext. Fails with
	// domain.ErrInvalidInput on empty input, never otherwise.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext hashes to hash under the scheme and
	// parameters embedded in hash. Malformed hashes yield false, never an
	// error or a panic.
	Verify(hash, plaintext string) bool
}
