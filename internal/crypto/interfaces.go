package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing one-way hashes
// and checks plaintext candidates against them.
//
// A hash embeds the algorithm version, the work factor and a random salt, so
// hashing the same password twice yields different strings and a stored hash
// is verifiable without any side data.
type PasswordHasher interface {
	// HashPassword returns the hash of plaintext.
	// It fails for an empty plaintext and for one longer than 72 bytes.
	HashPassword(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A malformed hash is
	// treated as a mismatch.
	Verify(plaintext, hash string) bool
}
