package records

import (
	"context"
	"errors"

	"github.com/DRSN-tech/commerce-backend/internal/domain"
	"github.com/DRSN-tech/commerce-backend/internal/store"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// OrderSchema описывает вид сущности "заказ" для хранилища записей.
func OrderSchema() store.Schema {
	return store.Schema{
		Kind: "order",
		Fields: map[string]store.FieldKind{
			"product_id": store.FieldString,
			"quantity":   store.FieldInt,
			"status":     store.FieldString,
		},
	}
}

// OrderRepo реализует репозиторий заказов поверх хранилища записей.
type OrderRepo struct {
	store store.Store
}

func NewOrderRepo(s store.Store) *OrderRepo {
	return &OrderRepo{store: s}
}

func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	record, err := o.store.Create(ctx, orderToFields(order))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return orderFromRecord(record), nil
}

func (o *OrderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	record, err := o.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrRecordNotFound) {
			return nil, e.ErrOrderNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return orderFromRecord(record), nil
}

func (o *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	records, err := o.store.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	orders := make([]domain.Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, *orderFromRecord(record))
	}

	return orders, nil
}

func (o *OrderRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := o.store.ListIDs(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return ids, nil
}

func orderToFields(order *domain.Order) store.Fields {
	return store.Fields{
		"product_id": order.ProductID,
		"quantity":   order.Quantity,
		"status":     string(order.Status),
	}
}

func orderFromRecord(record *store.Record) *domain.Order {
	return &domain.Order{
		ID:        record.ID,
		ProductID: record.Fields["product_id"].(string),
		Quantity:  record.Fields["quantity"].(int64),
		Status:    domain.OrderStatus(record.Fields["status"].(string)),
	}
}
