package e

import "fmt"

var (
	// Ошибки хранилища записей
	ErrRecordNotFound = fmt.Errorf("record not found")
	ErrIDCollision    = fmt.Errorf("generated id already in use")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrPriceNegative        = fmt.Errorf("price must be non-negative")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrQuantityNegative     = fmt.Errorf("quantity must be non-negative")
	ErrQuantityNotPositive  = fmt.Errorf("quantity must be positive")
	ErrEmailRequired        = fmt.Errorf("email is required")
	ErrPasswordRequired     = fmt.Errorf("password is required")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")
	ErrUserNotFound    = fmt.Errorf("user not found")

	// 409 Conflict
	ErrEmailTaken        = fmt.Errorf("email is already registered")
	ErrInsufficientStock = fmt.Errorf("insufficient product stock")

	// 5xx
	ErrCatalogUnavailable  = fmt.Errorf("catalog service unavailable")
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
