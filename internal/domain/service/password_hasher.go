package service

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the stored hash.
	Compare(hash, password string) error
}
