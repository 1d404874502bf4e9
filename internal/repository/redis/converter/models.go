package converter

import "github.com/shopspring/decimal"

type ProductInfoRedisModel struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Stock int64           `json:"stock"`
	Price decimal.Decimal `json:"price"`
}
