package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the cost factor used for all stored hashes.
const DefaultBcryptCost = 13

// HashPassword returns a bcrypt hash of the password at the given cost.
// Cost values outside bcrypt's supported range fall back to the default.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
