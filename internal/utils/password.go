package utils

import "golang.org/x/crypto/bcrypt"

// maxHashCost caps the work factor.  Above this, a single login
// verification takes whole seconds and the endpoint becomes its own
// denial of service.
const maxHashCost = 15

// HashPassword returns the bcrypt hash of plain.  The cost is taken
// from configuration but clamped: anything below bcrypt's minimum
// (including zero from an unset BCRYPT_COST) falls back to the
// library default rather than silently producing throwaway hashes,
// and anything above maxHashCost is capped.
func HashPassword(plain string, cost int) (string, error) {
	switch {
	case cost < bcrypt.MinCost:
		cost = bcrypt.DefaultCost
	case cost > maxHashCost:
		cost = maxHashCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt hash against a plain password in
// constant time.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
