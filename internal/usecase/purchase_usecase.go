package usecase

import (
	"context"
	"encoding/json"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/harichselvamc/inventory-app-backend/internal/domain"
	"github.com/harichselvamc/inventory-app-backend/pkg/e"
	"github.com/harichselvamc/inventory-app-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PurchaseUseCase реализует покупку товаров: одиночную и пакетную.
type PurchaseUseCase struct {
	productRepo  ProductRepository
	purchaseRepo PurchaseRepository
	outboxRepo   OutboxRepository
	cacheRepo    CacheRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewPurchaseUC(
	productRepo ProductRepository,
	purchaseRepo PurchaseRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		outboxRepo:   outboxRepo,
		cacheRepo:    cacheRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// purchaseEventPayload — тело события purchase.recorded для Kafka.
type purchaseEventPayload struct {
	EventID     string          `json:"event_id"`
	PurchaseID  int64           `json:"purchase_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	PurchasedAt time.Time       `json:"purchased_at"`
}

// MakePurchase — одиночная покупка как вырожденный случай пакетной.
func (p *PurchaseUseCase) MakePurchase(ctx context.Context, item PurchaseItem) (*PurchaseRes, error) {
	const op = "PurchaseUseCase.MakePurchase"

	res, err := p.MakeBulkPurchase(ctx, NewBulkPurchaseReq([]PurchaseItem{item}))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &PurchaseRes{
		Purchase:       res.Purchases[0],
		RemainingStock: res.RemainingStock[item.ProductID],
	}, nil
}

// MakeBulkPurchase применяет пакет позиций атомарно: либо по каждой позиции
// списан остаток и записана продажа, либо база остаётся нетронутой.
// Блокирующее чтение (SELECT ... FOR UPDATE) закрывает гонку между проверкой
// остатка и его списанием при конкурентных покупках одного товара.
func (p *PurchaseUseCase) MakeBulkPurchase(ctx context.Context, req *BulkPurchaseReq) (*BulkPurchaseRes, error) {
	const op = "PurchaseUseCase.MakeBulkPurchase"

	requested, ids, err := p.validateItems(req.Items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Любая ошибка до коммита откатывает транзакцию целиком.
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Фаза проверки: пакетное блокирующее чтение всех упомянутых товаров.
	products, err := p.lockProducts(ctx, ids, requested)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фаза мутации: списание остатков и вставка записей о продажах.
	remaining := make(map[int64]int64, len(ids))
	for _, id := range ids {
		left, decErr := p.productRepo.DecrementStock(ctx, id, requested[id])
		if decErr != nil {
			err = decErr
			return nil, e.Wrap(op, err)
		}
		remaining[id] = left
	}

	now := time.Now().UTC()
	purchases := make([]domain.Purchase, 0, len(req.Items))
	for _, item := range req.Items {
		product := products[item.ProductID]
		purchases = append(purchases, *domain.NewPurchase(product.ID, product.Name, product.Price, item.Quantity, now))
	}

	created, err := p.purchaseRepo.CreateBatch(ctx, purchases)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Событие на каждую продажу пишется в outbox той же транзакцией.
	if err = p.recordEvents(ctx, created); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	if cacheErr := p.cacheRepo.InvalidateListings(ctx); cacheErr != nil {
		p.logger.Warnf("Failed to invalidate listing cache: %v", e.Wrap(op, cacheErr))
	}

	infos := make([]PurchaseInfo, 0, len(created))
	for _, purchase := range created {
		infos = append(infos, PurchaseInfo{
			ID:          purchase.ID,
			ProductID:   purchase.ProductID,
			Quantity:    purchase.Quantity,
			PurchasedAt: purchase.PurchasedAt,
		})
	}

	return &BulkPurchaseRes{Purchases: infos, RemainingStock: remaining}, nil
}

// validateItems проверяет позиции и агрегирует количество по товару:
// один товар может встречаться в пакете несколько раз.
func (p *PurchaseUseCase) validateItems(items []PurchaseItem) (map[int64]int64, []int64, error) {
	if len(items) == 0 {
		return nil, nil, e.ErrNoItems
	}

	requested := make(map[int64]int64, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, nil, e.NewItemError(item.ProductID, 0, item.Quantity, e.ErrInvalidQuantity)
		}
		if _, ok := requested[item.ProductID]; !ok {
			ids = append(ids, item.ProductID)
		}
		requested[item.ProductID] += item.Quantity
	}

	return requested, ids, nil
}

// lockProducts читает все товары пакета с блокировкой строк и проверяет,
// что каждый существует и остатка хватает на суммарный запрос.
func (p *PurchaseUseCase) lockProducts(ctx context.Context, ids []int64, requested map[int64]int64) (map[int64]domain.Product, error) {
	locked, err := p.productRepo.GetForUpdate(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[int64]domain.Product, len(locked))
	for _, product := range locked {
		products[product.ID] = product
	}

	for _, id := range ids {
		product, ok := products[id]
		if !ok {
			return nil, e.NewItemError(id, 0, requested[id], e.ErrProductNotFound)
		}
		if requested[id] > product.Stock {
			return nil, e.NewItemError(id, product.Stock, requested[id], e.ErrInsufficientStock)
		}
	}

	return products, nil
}

// recordEvents пишет по одному outbox-событию на каждую продажу.
func (p *PurchaseUseCase) recordEvents(ctx context.Context, purchases []domain.Purchase) error {
	for _, purchase := range purchases {
		eventID := uuid.NewString()
		payload, err := json.Marshal(purchaseEventPayload{
			EventID:     eventID,
			PurchaseID:  purchase.ID,
			ProductID:   purchase.ProductID,
			ProductName: purchase.ProductName,
			Quantity:    purchase.Quantity,
			UnitPrice:   purchase.UnitPrice,
			TotalPrice:  purchase.UnitPrice.Mul(decimal.NewFromInt(purchase.Quantity)),
			PurchasedAt: purchase.PurchasedAt,
		})
		if err != nil {
			return err
		}

		if _, err := p.outboxRepo.Create(ctx, NewOutboxEvent(eventID, PurchaseRecorded, purchase.ProductID, payload)); err != nil {
			return err
		}
	}

	return nil
}
