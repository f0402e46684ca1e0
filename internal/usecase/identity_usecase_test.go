package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/commerce-backend/internal/cfg"
	"github.com/DRSN-tech/commerce-backend/internal/infrastructure/auth"
	"github.com/DRSN-tech/commerce-backend/internal/repository/records"
	"github.com/DRSN-tech/commerce-backend/internal/store"
	"github.com/DRSN-tech/commerce-backend/internal/usecase"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func newIdentityUC() *usecase.IdentityUseCase {
	repo := records.NewUserRepo(store.NewMemoryStore(records.UserSchema()))
	issuer := auth.NewJWTIssuer(&cfg.AuthCfg{JWTSecret: testJWTSecret, TokenTTL: time.Hour})
	return usecase.NewIdentityUC(repo, auth.NewBcryptHasher(), issuer, nopLogger{})
}

func TestIdentityUC_RegisterAndLogin(t *testing.T) {
	uc := newIdentityUC()
	ctx := context.Background()

	user, err := uc.Register(ctx, usecase.NewRegisterReq("a@b.c", "secret"))
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	// Пароль не хранится в открытом виде
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)

	res, err := uc.Login(ctx, usecase.NewLoginReq("a@b.c", "secret"))
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	// Токен подписан нашим секретом и содержит id пользователя
	parsed, err := jwt.ParseWithClaims(res.Token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestIdentityUC_RegisterDuplicateEmail(t *testing.T) {
	uc := newIdentityUC()
	ctx := context.Background()

	_, err := uc.Register(ctx, usecase.NewRegisterReq("a@b.c", "secret"))
	require.NoError(t, err)

	_, err = uc.Register(ctx, usecase.NewRegisterReq("a@b.c", "other"))
	assert.ErrorIs(t, err, e.ErrEmailTaken)
}

func TestIdentityUC_RegisterValidation(t *testing.T) {
	uc := newIdentityUC()
	ctx := context.Background()

	_, err := uc.Register(ctx, usecase.NewRegisterReq("", "secret"))
	assert.ErrorIs(t, err, e.ErrEmailRequired)

	_, err = uc.Register(ctx, usecase.NewRegisterReq("a@b.c", ""))
	assert.ErrorIs(t, err, e.ErrPasswordRequired)
}

func TestIdentityUC_LoginWrongPassword(t *testing.T) {
	uc := newIdentityUC()
	ctx := context.Background()

	_, err := uc.Register(ctx, usecase.NewRegisterReq("a@b.c", "secret"))
	require.NoError(t, err)

	_, err = uc.Login(ctx, usecase.NewLoginReq("a@b.c", "wrong"))
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestIdentityUC_LoginUnknownEmail(t *testing.T) {
	uc := newIdentityUC()

	_, err := uc.Login(context.Background(), usecase.NewLoginReq("missing@b.c", "secret"))
	assert.ErrorIs(t, err, e.ErrUserNotFound)
}
