package auth

import (
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher хэширует пароли через bcrypt.
// bcrypt.CompareHashAndPassword устойчив к атакам по времени.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (b *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return string(hash), nil
}

func (b *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
