package usecase

import "context"

type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductInfo, error)
	GetProduct(ctx context.Context, id int64) (*ProductInfo, error)
	ListProducts(ctx context.Context, req *ListProductsReq) ([]ProductInfo, error)
	UpdateProduct(ctx context.Context, id int64, patch *ProductPatch) (*ProductInfo, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type PurchaseUC interface {
	MakePurchase(ctx context.Context, item PurchaseItem) (*PurchaseRes, error)
	MakeBulkPurchase(ctx context.Context, req *BulkPurchaseReq) (*BulkPurchaseRes, error)
}

type ReportUC interface {
	SalesReport(ctx context.Context, req *SalesReportReq) ([]SalesReportRow, error)
}

type HealthUC interface {
	Status() *HealthStatus
}
