package domain

// User описывает зарегистрированного пользователя.
// PasswordHash — bcrypt-хэш, пароль в открытом виде не сохраняется.
type User struct {
	ID           string
	Email        string
	PasswordHash string
}

func NewUser(email, passwordHash string) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
	}
}
