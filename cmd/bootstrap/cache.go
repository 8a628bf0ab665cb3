package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"tenancy-service/internal/infra/cache"
	"tenancy-service/internal/pkg/config"
	"tenancy-service/internal/usecase/queries"
	"tenancy-service/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisPingTimeout = 3 * time.Second

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		func(client *redis.Client, cfg config.Config) *cache.ApartmentSearchCache {
			return cache.NewApartmentSearchCache(client, cfg.Redis.TTL)
		},
		func(c *cache.ApartmentSearchCache) queries.ApartmentSearchCache { return c },
		func(c *cache.ApartmentSearchCache) shared.ListingInvalidator { return c },
	),
)

// NewRedisClient returns nil when Redis is not configured or unreachable;
// the search cache then runs disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR not set, apartment search cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis, apartment search cache disabled", "error", err)
		_ = client.Close()
		return nil
	}
	logger.Info("Connected to Redis", "addr", cfg.Redis.Addr)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}
