package security

import "golang.org/x/crypto/bcrypt"

// PasswordHashCost is the bcrypt cost factor for new hashes. Verification
// reads the cost from the stored hash, so raising this later only affects
// newly written credentials.
const PasswordHashCost = 12

// HashPassword derives a salted bcrypt hash from a plaintext password. The
// plaintext is never stored anywhere.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a stored hash and a plaintext candidate in
// constant time. It returns a bare boolean; the plaintext is never echoed
// back.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
