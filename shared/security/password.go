package security

import "github.com/matthewhartstonge/argon2"

var config = argon2.DefaultConfig()

// HashPassword hashes a plaintext password with argon2id and returns the
// encoded form, which embeds the salt and cost parameters.
func HashPassword(password string) (string, error) {
	encoded, err := config.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword compares a plaintext password against an encoded hash in
// constant time. A mismatch is reported as false, not as an error.
func VerifyPassword(password, encodedHash string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
