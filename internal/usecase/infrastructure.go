package usecase

import (
	"context"
	"time"
)

// CatalogInfra — удалённый доступ к каталогу товаров из сервиса заказов.
// Реализация обязана ограничивать вызов явным таймаутом и различать
// недоступность сервиса (e.ErrCatalogUnavailable) и отсутствие товара
// (e.ErrProductNotFound).
type CatalogInfra interface {
	GetProduct(ctx context.Context, id string) (*ProductInfo, error)
}

// PasswordHasher — хэширование и проверка паролей.
// Сравнение выполняется функцией самой схемы хэширования,
// устойчивой к атакам по времени.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer выпускает непрозрачный bearer-токен для субъекта.
type TokenIssuer interface {
	Issue(subject string, issuedAt time.Time) (string, error)
}
