// Package service defines contracts for domain services.
package service

// PasswordHasher abstracts credential hashing and the password policy, so the
// application layer never touches a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength checks the password against the configured
	// policy and returns a list of violated rules, empty when it passes.
	ValidatePasswordStrength(password string) []string
}
