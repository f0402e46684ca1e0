package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse сопоставляет ошибку приложения с HTTP-статусом и сообщением.
// Неизвестные ошибки не раскрываются клиенту.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrPriceNegative):
		return http.StatusBadRequest, e.ErrPriceNegative.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrQuantityNegative):
		return http.StatusBadRequest, e.ErrQuantityNegative.Error()
	case errors.Is(err, e.ErrQuantityNotPositive):
		return http.StatusBadRequest, e.ErrQuantityNotPositive.Error()
	case errors.Is(err, e.ErrEmailRequired):
		return http.StatusBadRequest, e.ErrEmailRequired.Error()
	case errors.Is(err, e.ErrPasswordRequired):
		return http.StatusBadRequest, e.ErrPasswordRequired.Error()
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, e.ErrInvalidCredentials.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrUserNotFound):
		return http.StatusNotFound, e.ErrUserNotFound.Error()
	case errors.Is(err, e.ErrRecordNotFound):
		return http.StatusNotFound, e.ErrRecordNotFound.Error()
	case errors.Is(err, e.ErrEmailTaken):
		return http.StatusConflict, e.ErrEmailTaken.Error()
	case errors.Is(err, e.ErrInsufficientStock):
		return http.StatusConflict, e.ErrInsufficientStock.Error()
	case errors.Is(err, e.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, e.ErrCatalogUnavailable.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePrice разбирает цену из JSON-числа.
// Отклоняет нечисловые значения, отрицательные цены, больше двух знаков
// после запятой и значения сверх разумного потолка.
func parsePrice(raw json.Number) (float64, error) {
	if raw == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(raw.String())
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrPriceNegative
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	price, _ := d.Float64()
	return price, nil
}
