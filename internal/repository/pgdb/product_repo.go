package pgdb

import (
	"context"
	"errors"

	"github.com/harichselvamc/inventory-app-backend/internal/domain"
	"github.com/harichselvamc/inventory-app-backend/internal/repository/pgdb/converter"
	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
	"github.com/harichselvamc/inventory-app-backend/pkg/e"
	"github.com/harichselvamc/inventory-app-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// GetByID возвращает товар по идентификатору или e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, stock, price, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.Stock, &model.Price, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetByName ищет товар по имени без учёта регистра.
func (p *ProductRepo) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	query := `
		SELECT id, name, stock, price, created_at, updated_at
		FROM products
		WHERE lower(name) = lower($1)
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, name).
		Scan(&model.ID, &model.Name, &model.Stock, &model.Price, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// List возвращает страницу товаров со стабильным порядком по id.
// Непустой search фильтрует по подстроке имени без учёта регистра.
func (p *ProductRepo) List(ctx context.Context, skip, limit int, search string) ([]domain.Product, error) {
	query := `
		SELECT id, name, stock, price, created_at, updated_at
		FROM products
		WHERE $3 = '' OR name ILIKE '%' || $3 || '%'
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, skip, limit, search)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Stock, &model.Price, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// Create вставляет товар. Дубликат имени (без учёта регистра, уникальный
// индекс по lower(name)) возвращает e.ErrProductAlreadyExists.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, stock, price)
		VALUES ($1, $2, $3)
		RETURNING id, name, stock, price, created_at, updated_at
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, product.Name, product.Stock, product.Price).
		Scan(&model.ID, &model.Name, &model.Stock, &model.Price, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductAlreadyExists)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Update применяет частичное обновление: nil-поля патча не меняются.
func (p *ProductRepo) Update(ctx context.Context, id int64, patch *usecase.ProductPatch) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = COALESCE($2, name),
		    stock = COALESCE($3, stock),
		    price = COALESCE($4, price),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, stock, price, created_at, updated_at
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id, patch.Name, patch.Stock, patch.Price).
		Scan(&model.ID, &model.Name, &model.Stock, &model.Price, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductAlreadyExists)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Delete удаляет товар по идентификатору.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	result, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// GetForUpdate читает товары пакета с блокировкой строк в транзакции из
// контекста. Порядок по id фиксирует порядок захвата блокировок.
func (p *ProductRepo) GetForUpdate(ctx context.Context, ids []int64) ([]domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, name, stock, price, created_at, updated_at
		FROM products
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE
	`

	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0, len(ids))
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Stock, &model.Price, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// DecrementStock списывает количество и возвращает остаток.
// CHECK (stock >= 0) в схеме страхует инвариант на уровне БД.
func (p *ProductRepo) DecrementStock(ctx context.Context, id int64, quantity int64) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1
		RETURNING stock
	`

	var remaining int64
	if err := tx.QueryRow(ctx, query, id, quantity).Scan(&remaining); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return remaining, nil
}
