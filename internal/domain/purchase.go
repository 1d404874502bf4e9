package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase описывает неизменяемую запись о продаже товара.
// ProductName и UnitPrice фиксируются в момент продажи: отчёты не зависят
// от последующего изменения цены или удаления товара.
type Purchase struct {
	ID          int64
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int64
	PurchasedAt time.Time
}

func NewPurchase(productID int64, productName string, unitPrice decimal.Decimal, quantity int64, purchasedAt time.Time) *Purchase {
	return &Purchase{
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		PurchasedAt: purchasedAt,
	}
}
