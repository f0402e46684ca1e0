package records

import (
	"context"

	"github.com/DRSN-tech/commerce-backend/internal/domain"
	"github.com/DRSN-tech/commerce-backend/internal/store"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// UserSchema описывает вид сущности "пользователь" для хранилища записей.
func UserSchema() store.Schema {
	return store.Schema{
		Kind: "user",
		Fields: map[string]store.FieldKind{
			"email":         store.FieldString,
			"password_hash": store.FieldString,
		},
	}
}

// UserRepo реализует репозиторий пользователей поверх хранилища записей.
type UserRepo struct {
	store store.Store
}

func NewUserRepo(s store.Store) *UserRepo {
	return &UserRepo{store: s}
}

func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	record, err := u.store.Create(ctx, userToFields(user))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return userFromRecord(record), nil
}

// FindByEmail возвращает пользователей с точным совпадением email.
// Отсутствие совпадений — пустой срез, решение об ошибке принимает usecase.
func (u *UserRepo) FindByEmail(ctx context.Context, email string) ([]domain.User, error) {
	records, err := u.store.FindBy(ctx, "email", email)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	users := make([]domain.User, 0, len(records))
	for _, record := range records {
		users = append(users, *userFromRecord(record))
	}

	return users, nil
}

func userToFields(user *domain.User) store.Fields {
	return store.Fields{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
	}
}

func userFromRecord(record *store.Record) *domain.User {
	return &domain.User{
		ID:           record.ID,
		Email:        record.Fields["email"].(string),
		PasswordHash: record.Fields["password_hash"].(string),
	}
}
