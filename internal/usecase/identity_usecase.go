package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/commerce-backend/internal/domain"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
)

// IdentityUseCase реализует регистрацию и вход пользователей.
type IdentityUseCase struct {
	userRepo UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Logger
}

func NewIdentityUC(userRepo UserRepository, hasher PasswordHasher,
	tokens TokenIssuer, logger logger.Logger) *IdentityUseCase {
	return &IdentityUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register создаёт пользователя с уникальным email.
// Проверка уникальности и вставка не атомарны: при конкурентной
// регистрации одного email оба запроса могут пройти проверку.
// Компромисс принят для однопроцессного развёртывания без внешних блокировок.
func (i *IdentityUseCase) Register(ctx context.Context, req *RegisterReq) (*domain.User, error) {
	const op = "IdentityUseCase.Register"

	if req.Email == "" {
		return nil, e.Wrap(op, e.ErrEmailRequired)
	}
	if req.Password == "" {
		return nil, e.Wrap(op, e.ErrPasswordRequired)
	}

	existing, err := i.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(existing) > 0 {
		return nil, e.Wrap(op, e.ErrEmailTaken)
	}

	// Хэширование строго до сохранения, пароль в открытом виде не персистится.
	hash, err := i.hasher.Hash(req.Password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := i.userRepo.Create(ctx, domain.NewUser(req.Email, hash))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	i.logger.Infof("user registered: %s", user.ID)
	return user, nil
}

// Login проверяет учётные данные и выпускает токен.
func (i *IdentityUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "IdentityUseCase.Login"

	users, err := i.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(users) == 0 {
		return nil, e.Wrap(op, e.ErrUserNotFound)
	}

	user := users[0]
	if err := i.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	token, err := i.tokens.Issue(user.ID, time.Now())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewLoginRes(token), nil
}
