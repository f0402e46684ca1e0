package auth

import (
	"time"

	"github.com/DRSN-tech/commerce-backend/internal/cfg"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jimlawless/whereami"
)

// JWTIssuer выпускает подписанные HS256-токены с субъектом и временем выпуска.
// Содержимое токена для остальной системы непрозрачно.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(cfg *cfg.AuthCfg) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

func (j *JWTIssuer) Issue(subject string, issuedAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return token, nil
}
