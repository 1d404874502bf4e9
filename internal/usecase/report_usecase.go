package usecase

import (
	"context"

	"github.com/harichselvamc/inventory-app-backend/pkg/e"
	"github.com/harichselvamc/inventory-app-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// ReportUseCase строит отчёт о продажах по снимкам цены и имени,
// зафиксированным в момент продажи. Удаление товара не искажает отчёт.
type ReportUseCase struct {
	purchaseRepo PurchaseRepository
	logger       logger.Logger
}

func NewReportUC(purchaseRepo PurchaseRepository, logger logger.Logger) *ReportUseCase {
	return &ReportUseCase{
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

// SalesReport возвращает страницу отчёта, самые свежие продажи первыми.
func (r *ReportUseCase) SalesReport(ctx context.Context, req *SalesReportReq) ([]SalesReportRow, error) {
	const op = "ReportUseCase.SalesReport"

	skip, limit := normalizePage(req.Skip, req.Limit)

	purchases, err := r.purchaseRepo.ListSalesHistory(ctx, skip, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	rows := make([]SalesReportRow, 0, len(purchases))
	for _, purchase := range purchases {
		rows = append(rows, SalesReportRow{
			ProductName: purchase.ProductName,
			Quantity:    purchase.Quantity,
			TotalPrice:  purchase.UnitPrice.Mul(decimal.NewFromInt(purchase.Quantity)),
			Date:        purchase.PurchasedAt,
		})
	}

	return rows, nil
}
