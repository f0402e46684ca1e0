package usecase

import (
	"context"

	"github.com/DRSN-tech/commerce-backend/internal/domain"
)

type CatalogUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type IdentityUC interface {
	Register(ctx context.Context, req *RegisterReq) (*domain.User, error)
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
}

type OrderUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
}
