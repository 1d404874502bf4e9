package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product описывает товар на складе
type Product struct {
	ID        int64
	Name      string
	Stock     int64
	Price     decimal.Decimal // Цена хранится как NUMERIC(12,2)
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewProduct(name string, stock int64, price decimal.Decimal) *Product {
	return &Product{
		Name:  name,
		Stock: stock,
		Price: price,
	}
}
