package usecase

import "github.com/DRSN-tech/commerce-backend/internal/domain"

// CATALOG USECASE

// CreateProductReq — запрос на добавление товара в каталог.
type CreateProductReq struct {
	Name        string
	Description string
	Price       float64
	Quantity    int64
}

// UpdateProductReq — запрос на полную замену полей товара.
type UpdateProductReq struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Quantity    int64
}

// ORDER USECASE

// PlaceOrderReq — запрос на размещение заказа.
type PlaceOrderReq struct {
	ProductID string
	Quantity  int64
}

// PlaceOrderRes — результат размещения заказа.
type PlaceOrderRes struct {
	OrderID string
	Status  domain.OrderStatus
}

// IDENTITY USECASE

type RegisterReq struct {
	Email    string
	Password string
}

type LoginReq struct {
	Email    string
	Password string
}

type LoginRes struct {
	Token string
}

// INFRASTRUCTURE

// ProductInfo — данные товара, полученные от каталога по сети.
type ProductInfo struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Quantity    int64
}

// MAPPERS

func NewCreateProductReq(name, description string, price float64, quantity int64) *CreateProductReq {
	return &CreateProductReq{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
}

func NewUpdateProductReq(id, name, description string, price float64, quantity int64) *UpdateProductReq {
	return &UpdateProductReq{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
}

func NewPlaceOrderReq(productID string, quantity int64) *PlaceOrderReq {
	return &PlaceOrderReq{
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewPlaceOrderRes(orderID string, status domain.OrderStatus) *PlaceOrderRes {
	return &PlaceOrderRes{
		OrderID: orderID,
		Status:  status,
	}
}

func NewRegisterReq(email, password string) *RegisterReq {
	return &RegisterReq{
		Email:    email,
		Password: password,
	}
}

func NewLoginReq(email, password string) *LoginReq {
	return &LoginReq{
		Email:    email,
		Password: password,
	}
}

func NewLoginRes(token string) *LoginRes {
	return &LoginRes{Token: token}
}
