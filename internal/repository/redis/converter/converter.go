//go:generate goverter gen github.com/harichselvamc/inventory-app-backend/internal/repository/redis/converter

package converter

import (
	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// goverter:converter
// goverter:extend ConvertDecimal
type ProductInfoConverter interface {
	ToRedisModel(entity *usecase.ProductInfo) *ProductInfoRedisModel
	ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo
	ToArrRedisModel(entities []usecase.ProductInfo) []ProductInfoRedisModel
	ToArrUseCase(models []ProductInfoRedisModel) []usecase.ProductInfo
}

func ConvertDecimal(d decimal.Decimal) decimal.Decimal {
	return d
}
