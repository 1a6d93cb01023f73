package service

// PasswordHasher protects account passwords held by the development backend.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produced hash. Malformed hashes never match.
	Check(password, hash string) bool
}
