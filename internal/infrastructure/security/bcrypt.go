package security

import (
	"golang.org/x/crypto/bcrypt"

	"userservice/internal/domain"
)

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash rejects empty plaintext; bcrypt salts per call, so two hashes of
// the same password differ.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domain.ErrMissingField("password")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}
	return string(b), nil
}

// Compare returns a non-nil error on mismatch OR malformed hash input;
// callers cannot distinguish the two, which is the point.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
