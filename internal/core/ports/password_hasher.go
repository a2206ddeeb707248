package ports

// PasswordHasher is the one-way transform between plaintext passwords and
// their stored form. Hash salts every call, so two hashes of the same
// plaintext differ; Verify accepts any hash previously produced for that
// plaintext and compares in constant time.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, stored string) bool
}
