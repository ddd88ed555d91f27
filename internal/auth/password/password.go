// Package password provides one-way password hashing for credential storage.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash from a plaintext password. The plaintext
// is never stored or logged.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare checks a plaintext password against a stored hash. Returns an error
// on mismatch.
func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
