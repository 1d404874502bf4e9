package http

import (
	"time"

	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// ProductResponse — представление товара в ответах API.
type ProductResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Stock int64           `json:"stock"`
	Price decimal.Decimal `json:"price" swaggertype:"number"`
}

func NewProductResponse(info *usecase.ProductInfo) *ProductResponse {
	return &ProductResponse{
		ID:    info.ID,
		Name:  info.Name,
		Stock: info.Stock,
		Price: info.Price,
	}
}

func NewProductListResponse(infos []usecase.ProductInfo) []ProductResponse {
	res := make([]ProductResponse, 0, len(infos))
	for i := range infos {
		res = append(res, *NewProductResponse(&infos[i]))
	}
	return res
}

// CreateProductRequest — тело POST /products.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Stock int64           `json:"stock"`
	Price decimal.Decimal `json:"price" swaggertype:"number"`
}

// UpdateProductRequest — тело PUT /products/{id}; nil-поля не изменяются.
type UpdateProductRequest struct {
	Name  *string          `json:"name,omitempty"`
	Stock *int64           `json:"stock,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty" swaggertype:"number"`
}

// PurchaseItemRequest — одна позиция покупки.
type PurchaseItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// BulkPurchaseRequest — тело POST /purchases/bulk.
type BulkPurchaseRequest struct {
	Items []PurchaseItemRequest `json:"items"`
}

// PurchaseResponse — созданная запись о продаже.
type PurchaseResponse struct {
	ID             int64     `json:"id"`
	ProductID      int64     `json:"product_id"`
	Quantity       int64     `json:"quantity"`
	RemainingStock int64     `json:"remaining_stock"`
	PurchasedAt    time.Time `json:"purchased_at"`
}

// SinglePurchaseResponse — ответ POST /purchases.
type SinglePurchaseResponse struct {
	Message        string `json:"message"`
	RemainingStock int64  `json:"remaining_stock"`
}

// BulkPurchaseResponse — ответ POST /purchases/bulk.
type BulkPurchaseResponse struct {
	Message   string             `json:"message"`
	Purchases []PurchaseResponse `json:"purchases"`
}

// SalesReportRowResponse — строка отчёта о продажах.
type SalesReportRowResponse struct {
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price" swaggertype:"number"`
	Date        time.Time       `json:"date"`
}

// HealthResponse — ответ GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
