package usecase

import (
	"context"

	"github.com/harichselvamc/inventory-app-backend/internal/domain"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	List(ctx context.Context, skip, limit int, search string) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch *ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error

	// Методы, работающие внутри транзакции из контекста (pkg/tr).
	GetForUpdate(ctx context.Context, ids []int64) ([]domain.Product, error)
	DecrementStock(ctx context.Context, id int64, quantity int64) (int64, error)
}

type PurchaseRepository interface {
	// CreateBatch вставляет записи о продажах внутри транзакции из контекста.
	// Фиксация транзакции остаётся за вызывающей стороной.
	CreateBatch(ctx context.Context, purchases []domain.Purchase) ([]domain.Purchase, error)
	ListSalesHistory(ctx context.Context, skip, limit int) ([]domain.Purchase, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetListing(ctx context.Context, key string) ([]ProductInfo, bool, error)
	SetListing(ctx context.Context, key string, products []ProductInfo) error
	InvalidateListings(ctx context.Context) error
}
