package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harichselvamc/inventory-app-backend/internal/domain"
	"github.com/harichselvamc/inventory-app-backend/pkg/e"
	"github.com/harichselvamc/inventory-app-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ProductUseCase реализует бизнес-логику управления товарами.
type ProductUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
	listGroup   singleflight.Group
}

func NewProductUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// CreateProduct создаёт товар с уникальным (без учёта регистра) именем.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductInfo, error) {
	const op = "ProductUseCase.CreateProduct"

	if err := validateName(req.Name); err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, e.Wrap(op, err)
	}
	if req.Stock < 0 {
		return nil, e.Wrap(op, e.ErrNegativeStock)
	}

	// Проверка дубликата до вставки; уникальный индекс по lower(name)
	// закрывает гонку между проверкой и вставкой.
	existing, err := p.productRepo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, e.ErrProductNotFound) {
		return nil, e.Wrap(op, err)
	}
	if existing != nil {
		return nil, e.Wrap(op, e.ErrProductAlreadyExists)
	}

	product, err := p.productRepo.Create(ctx, domain.NewProduct(strings.TrimSpace(req.Name), req.Stock, req.Price))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateListings(ctx, op)

	info := NewProductInfo(product.ID, product.Name, product.Stock, product.Price)
	return &info, nil
}

// GetProduct возвращает товар по идентификатору.
func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*ProductInfo, error) {
	const op = "ProductUseCase.GetProduct"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewProductInfo(product.ID, product.Name, product.Stock, product.Price)
	return &info, nil
}

// ListProducts возвращает страницу товаров, упорядоченную по id.
// Ответ кэшируется в Redis с коротким TTL; повторное вычисление при промахе
// защищено singleflight, чтобы конкурентные вызовы не дублировали запрос к БД.
func (p *ProductUseCase) ListProducts(ctx context.Context, req *ListProductsReq) ([]ProductInfo, error) {
	const op = "ProductUseCase.ListProducts"

	skip, limit := normalizePage(req.Skip, req.Limit)
	search := strings.TrimSpace(req.Search)
	key := fmt.Sprintf("products:list:%d:%d:%s", skip, limit, strings.ToLower(search))

	v, err, _ := p.listGroup.Do(key, func() (interface{}, error) {
		cached, ok, err := p.cacheRepo.GetListing(ctx, key)
		if err != nil {
			p.logger.Warnf("Listing cache read failed: %v", e.Wrap(op, err))
		}
		if ok {
			return cached, nil
		}

		products, err := p.productRepo.List(ctx, skip, limit, search)
		if err != nil {
			return nil, err
		}

		infos := make([]ProductInfo, 0, len(products))
		for _, product := range products {
			infos = append(infos, NewProductInfo(product.ID, product.Name, product.Stock, product.Price))
		}

		if err := p.cacheRepo.SetListing(ctx, key, infos); err != nil {
			p.logger.Warnf("Listing cache write failed: %v", e.Wrap(op, err))
		}

		return infos, nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return v.([]ProductInfo), nil
}

// UpdateProduct применяет частичное обновление: незаданные поля не меняются.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, id int64, patch *ProductPatch) (*ProductInfo, error) {
	const op = "ProductUseCase.UpdateProduct"

	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return nil, e.Wrap(op, err)
		}

		existing, err := p.productRepo.GetByName(ctx, *patch.Name)
		if err != nil && !errors.Is(err, e.ErrProductNotFound) {
			return nil, e.Wrap(op, err)
		}
		if existing != nil && existing.ID != id {
			return nil, e.Wrap(op, e.ErrProductAlreadyExists)
		}
	}
	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return nil, e.Wrap(op, err)
		}
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, e.Wrap(op, e.ErrNegativeStock)
	}

	product, err := p.productRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateListings(ctx, op)

	info := NewProductInfo(product.ID, product.Name, product.Stock, product.Price)
	return &info, nil
}

// DeleteProduct удаляет товар. История продаж сохраняется: записи о продажах
// несут снимок имени и цены и не ссылаются на живую строку товара.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "ProductUseCase.DeleteProduct"

	if err := p.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateListings(ctx, op)
	return nil
}

// invalidateListings сбрасывает кэш листинга, логируя неудачу вместо отказа операции.
func (p *ProductUseCase) invalidateListings(ctx context.Context, op string) {
	if err := p.cacheRepo.InvalidateListings(ctx); err != nil {
		p.logger.Warnf("Failed to invalidate listing cache: %v", e.Wrap(op, err))
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrProductNameRequired
	}
	return nil
}

// validatePrice проверяет, что цена положительная, в пределах разумного
// и имеет не более двух знаков после запятой.
func validatePrice(price decimal.Decimal) error {
	maxPrice := decimal.NewFromInt(1_000_000_000)

	if price.LessThanOrEqual(decimal.Zero) {
		return e.ErrPriceMustBePositive
	}
	if price.GreaterThan(maxPrice) {
		return e.ErrInvalidPrice
	}
	if price.Exponent() < -2 {
		return e.ErrPricePrecision
	}

	return nil
}

func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return skip, limit
}
