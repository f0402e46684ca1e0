package usecase

import (
	"context"

	"github.com/DRSN-tech/commerce-backend/internal/domain"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
)

// OrderUseCase реализует размещение заказов с удалённой проверкой остатка.
type OrderUseCase struct {
	orderRepo OrderRepository
	catalog   CatalogInfra
	logger    logger.Logger
}

func NewOrderUC(orderRepo OrderRepository, catalog CatalogInfra, logger logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		catalog:   catalog,
		logger:    logger,
	}
}

// PlaceOrder размещает заказ. Шаги выполняются по порядку,
// каждый прерывает обработку при ошибке; заказ не создаётся,
// пока не пройдены все проверки.
//
// Проверка остатка и создание заказа не атомарны относительно каталога:
// два конкурентных заказа могут суммарно превысить остаток.
// Компромисс принят; резервирование остатка у каталога не выполняется.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	const op = "OrderUseCase.PlaceOrder"

	// Валидация количества
	if req.Quantity <= 0 {
		return nil, e.Wrap(op, e.ErrQuantityNotPositive)
	}

	// Удалённый запрос текущего остатка товара.
	// Недоступность каталога и отсутствие товара различаются клиентом каталога.
	product, err := o.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Проверка остатка по данным на момент запроса
	if product.Quantity < req.Quantity {
		return nil, e.Wrap(op, e.ErrInsufficientStock)
	}

	// Остаток в каталоге при размещении не уменьшается.
	order, err := o.orderRepo.Create(ctx, domain.NewOrder(req.ProductID, req.Quantity))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	o.logger.Infof("order placed: %s, product: %s, quantity: %d", order.ID, order.ProductID, order.Quantity)
	return NewPlaceOrderRes(order.ID, order.Status), nil
}

func (o *OrderUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

func (o *OrderUseCase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}
