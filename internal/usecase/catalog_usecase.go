package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/commerce-backend/internal/domain"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
)

// CatalogUseCase реализует бизнес-логику каталога товаров.
type CatalogUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateProduct валидирует и сохраняет новый товар.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	if err := validateProduct(req.Name, req.Price, req.Quantity); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := c.productRepo.Create(ctx, domain.NewProduct(req.Name, req.Description, req.Price, req.Quantity))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Infof("product created: %s", product.ID)
	return product, nil
}

func (c *CatalogUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

func (c *CatalogUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.productRepo.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// SearchProducts ищет товары по подстроке имени без учёта регистра.
// Отсутствие совпадений — пустой результат, не ошибка.
func (c *CatalogUseCase) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	const op = "CatalogUseCase.SearchProducts"

	products, err := c.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	needle := strings.ToLower(query)
	matches := make([]domain.Product, 0)
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Name), needle) {
			matches = append(matches, product)
		}
	}

	return matches, nil
}

// UpdateProduct полностью заменяет поля товара.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	if err := validateProduct(req.Name, req.Price, req.Quantity); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(req.Name, req.Description, req.Price, req.Quantity)
	product.ID = req.ID

	if err := c.productRepo.Update(ctx, product); err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	const op = "CatalogUseCase.DeleteProduct"

	if err := c.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	c.logger.Infof("product deleted: %s", id)
	return nil
}

// validateProduct проверяет инварианты товара: непустое имя,
// неотрицательные цена и остаток.
func validateProduct(name string, price float64, quantity int64) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrProductNameRequired
	}

	if price < 0 {
		return e.ErrPriceNegative
	}

	if quantity < 0 {
		return e.ErrQuantityNegative
	}

	return nil
}
