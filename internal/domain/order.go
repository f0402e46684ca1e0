package domain

// OrderStatus — статус заказа.
// Заказ создаётся в статусе PLACED; переходы в CANCELLED и FULFILLED
// терминальные и выполняются вне сервиса размещения.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusFulfilled OrderStatus = "FULFILLED"
)

// Order описывает заказ на один товар.
// ProductID ссылается на товар каталога, ссылочная целостность
// между сервисами не обеспечивается.
type Order struct {
	ID        string
	ProductID string
	Quantity  int64
	Status    OrderStatus
}

func NewOrder(productID string, quantity int64) *Order {
	return &Order{
		ProductID: productID,
		Quantity:  quantity,
		Status:    OrderStatusPlaced,
	}
}
