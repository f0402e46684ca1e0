package domain

// Product описывает товар каталога
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64 // Цена в условных единицах, не более двух знаков после запятой
	Quantity    int64   // Остаток на складе
}

func NewProduct(name, description string, price float64, quantity int64) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
}
