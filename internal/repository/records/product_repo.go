package records

import (
	"context"
	"errors"

	"github.com/DRSN-tech/commerce-backend/internal/domain"
	"github.com/DRSN-tech/commerce-backend/internal/store"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// ProductSchema описывает вид сущности "товар" для хранилища записей.
func ProductSchema() store.Schema {
	return store.Schema{
		Kind: "product",
		Fields: map[string]store.FieldKind{
			"name":        store.FieldString,
			"description": store.FieldString,
			"price":       store.FieldFloat,
			"quantity":    store.FieldInt,
		},
	}
}

// ProductRepo реализует репозиторий товаров поверх хранилища записей.
type ProductRepo struct {
	store store.Store
}

func NewProductRepo(s store.Store) *ProductRepo {
	return &ProductRepo{store: s}
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	record, err := p.store.Create(ctx, productToFields(product))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return productFromRecord(record), nil
}

func (p *ProductRepo) Get(ctx context.Context, id string) (*domain.Product, error) {
	record, err := p.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrRecordNotFound) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return productFromRecord(record), nil
}

func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	records, err := p.store.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, record := range records {
		products = append(products, *productFromRecord(record))
	}

	return products, nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	if err := p.store.Update(ctx, product.ID, productToFields(product)); err != nil {
		if errors.Is(err, e.ErrRecordNotFound) {
			return e.ErrProductNotFound
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := p.store.Delete(ctx, id); err != nil {
		if errors.Is(err, e.ErrRecordNotFound) {
			return e.ErrProductNotFound
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func productToFields(product *domain.Product) store.Fields {
	return store.Fields{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"quantity":    product.Quantity,
	}
}

func productFromRecord(record *store.Record) *domain.Product {
	return &domain.Product{
		ID:          record.ID,
		Name:        record.Fields["name"].(string),
		Description: record.Fields["description"].(string),
		Price:       record.Fields["price"].(float64),
		Quantity:    record.Fields["quantity"].(int64),
	}
}
