package redis

import (
	"context"
	"encoding/json"
	"errors"

	config "github.com/harichselvamc/inventory-app-backend/internal/cfg"
	"github.com/harichselvamc/inventory-app-backend/internal/repository/redis/converter"
	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
	"github.com/harichselvamc/inventory-app-backend/pkg/clients"
	"github.com/harichselvamc/inventory-app-backend/pkg/e"
	"github.com/harichselvamc/inventory-app-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// listingKeySet хранит активные ключи листинга для пакетной инвалидации.
const listingKeySet = "products:list:keys"

// CacheRepo кэширует страницы листинга товаров в Redis с коротким TTL.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductInfoConverter
	cfg    *config.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductInfoConverter,
	cfg *config.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetListing возвращает закэшированную страницу листинга.
// Второй результат сообщает о попадании; испорченная запись удаляется и
// трактуется как промах.
func (c *CacheRepo) GetListing(ctx context.Context, key string) ([]usecase.ProductInfo, bool, error) {
	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, false, nil // cache miss
		}
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ProductInfoRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		c.logger.Warnf("Listing cache unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, false, nil
	}

	return c.conv.ToArrUseCase(models), true, nil
}

// SetListing кэширует страницу листинга на cfg.ListingTTL и регистрирует
// её ключ для последующей инвалидации. Ошибки записи логируются.
func (c *CacheRepo) SetListing(ctx context.Context, key string, products []usecase.ProductInfo) error {
	models := c.conv.ToArrRedisModel(products)

	data, err := json.Marshal(models)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	pipeline := c.client.Client.Pipeline()
	pipeline.Set(ctx, key, data, c.cfg.ListingTTL)
	pipeline.SAdd(ctx, listingKeySet, key)

	if _, err := pipeline.Exec(ctx); err != nil {
		c.logger.Warnf("Cache pipeline failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// InvalidateListings удаляет все закэшированные страницы листинга.
func (c *CacheRepo) InvalidateListings(ctx context.Context) error {
	keys, err := c.client.Client.SMembers(ctx, listingKeySet).Result()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	keys = append(keys, listingKeySet)
	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
