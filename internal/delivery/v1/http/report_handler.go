package http

import (
	"net/http"

	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
	"github.com/harichselvamc/inventory-app-backend/pkg/logger"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUC
	logger        logger.Logger
}

func NewReportHandler(reportUsecase usecase.ReportUC, logger logger.Logger) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase, logger: logger}
}

// salesReport
//
//	@Summary	Отчёт о продажах
//	@Description	Строки считаются по цене и названию, зафиксированным на момент продажи
//	@Tags		reports
//	@Produce	json
//	@Param		skip	query		int	false	"Смещение"
//	@Param		limit	query		int	false	"Размер страницы"
//	@Success	200		{array}		SalesReportRowResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/reports/sales [get]
func (h *ReportHandler) salesReport(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		h.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	rows, err := h.reportUsecase.SalesReport(r.Context(), usecase.NewSalesReportReq(skip, limit))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]SalesReportRowResponse, 0, len(rows))
	for _, row := range rows {
		res = append(res, SalesReportRowResponse{
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			TotalPrice:  row.TotalPrice,
			Date:        row.Date,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}
