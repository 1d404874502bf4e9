package http

import (
	"net/http"

	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
	"github.com/harichselvamc/inventory-app-backend/pkg/logger"
)

type PurchaseHandler struct {
	purchaseUsecase usecase.PurchaseUC
	logger          logger.Logger
}

func NewPurchaseHandler(purchaseUsecase usecase.PurchaseUC, logger logger.Logger) *PurchaseHandler {
	return &PurchaseHandler{purchaseUsecase: purchaseUsecase, logger: logger}
}

// makePurchase
//
//	@Summary	Одиночная покупка
//	@Description	Списывает остаток товара и записывает продажу
//	@Tags		purchases
//	@Accept		json
//	@Produce	json
//	@Param		purchase	body		PurchaseItemRequest		true	"Позиция покупки"
//	@Success	200			{object}	SinglePurchaseResponse
//	@Failure	400			{object}	ErrorResponse	"Недостаточно остатка или неверное количество"
//	@Failure	404			{object}	ErrorResponse	"Товар не найден"
//	@Router		/purchases [post]
func (p *PurchaseHandler) makePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseItemRequest
	if err := decodeJSON(r, &req); err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.purchaseUsecase.MakePurchase(r.Context(), usecase.PurchaseItem{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &SinglePurchaseResponse{
		Message:        "purchase successful",
		RemainingStock: res.RemainingStock,
	})
}

// makeBulkPurchase
//
//	@Summary	Пакетная покупка
//	@Description	Применяет все позиции атомарно: при любой ошибке остатки не меняются
//	@Tags		purchases
//	@Accept		json
//	@Produce	json
//	@Param		purchases	body		BulkPurchaseRequest	true	"Позиции покупки"
//	@Success	201			{object}	BulkPurchaseResponse
//	@Failure	400			{object}	ErrorResponse	"Пустой пакет, неверное количество или недостаточно остатка"
//	@Failure	404			{object}	ErrorResponse	"Товар не найден"
//	@Router		/purchases/bulk [post]
func (p *PurchaseHandler) makeBulkPurchase(w http.ResponseWriter, r *http.Request) {
	var req BulkPurchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	items := make([]usecase.PurchaseItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.PurchaseItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	res, err := p.purchaseUsecase.MakeBulkPurchase(r.Context(), usecase.NewBulkPurchaseReq(items))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	purchases := make([]PurchaseResponse, 0, len(res.Purchases))
	for _, purchase := range res.Purchases {
		purchases = append(purchases, PurchaseResponse{
			ID:             purchase.ID,
			ProductID:      purchase.ProductID,
			Quantity:       purchase.Quantity,
			RemainingStock: res.RemainingStock[purchase.ProductID],
			PurchasedAt:    purchase.PurchasedAt,
		})
	}

	WriteSuccess(w, http.StatusCreated, &BulkPurchaseResponse{
		Message:   "bulk purchase successful",
		Purchases: purchases,
	})
}
