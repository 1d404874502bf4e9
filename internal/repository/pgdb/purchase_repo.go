package pgdb

import (
	"context"

	"github.com/harichselvamc/inventory-app-backend/internal/domain"
	"github.com/harichselvamc/inventory-app-backend/internal/repository/pgdb/converter"
	"github.com/harichselvamc/inventory-app-backend/pkg/e"
	"github.com/harichselvamc/inventory-app-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// PurchaseRepo реализует репозиторий записей о продажах поверх PostgreSQL.
type PurchaseRepo struct {
	pool *pgxpool.Pool
	conv converter.PurchaseConverter
}

func NewPurchaseRepo(pool *pgxpool.Pool, conv converter.PurchaseConverter) *PurchaseRepo {
	return &PurchaseRepo{
		pool: pool,
		conv: conv,
	}
}

// CreateBatch вставляет записи о продажах в транзакции из контекста.
// Коммит остаётся за вызывающей стороной.
func (p *PurchaseRepo) CreateBatch(ctx context.Context, purchases []domain.Purchase) ([]domain.Purchase, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO purchases (product_id, product_name, unit_price, quantity, purchased_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, product_id, product_name, unit_price, quantity, purchased_at
	`

	models := make([]converter.PurchaseModel, 0, len(purchases))
	for _, purchase := range purchases {
		var model converter.PurchaseModel
		err := tx.QueryRow(ctx, query,
			purchase.ProductID,
			purchase.ProductName,
			purchase.UnitPrice,
			purchase.Quantity,
			purchase.PurchasedAt,
		).Scan(&model.ID, &model.ProductID, &model.ProductName, &model.UnitPrice, &model.Quantity, &model.PurchasedAt)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	return p.conv.ToArrEntity(models), nil
}

// ListSalesHistory возвращает страницу продаж, самые свежие первыми.
func (p *PurchaseRepo) ListSalesHistory(ctx context.Context, skip, limit int) ([]domain.Purchase, error) {
	query := `
		SELECT id, product_id, product_name, unit_price, quantity, purchased_at
		FROM purchases
		ORDER BY purchased_at DESC, id DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.PurchaseModel, 0)
	for rows.Next() {
		var model converter.PurchaseModel
		if err := rows.Scan(&model.ID, &model.ProductID, &model.ProductName, &model.UnitPrice, &model.Quantity, &model.PurchasedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}
