// internal/portfolio/cache.go
package portfolio

import (
	"context"
	"encoding/json"
	"time"

	"unihub-api/internal/common/logger"
	"unihub-api/internal/models"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "portfolio:"

// CachedStore is a read-through Redis cache in front of another Store. Cache
// failures degrade to the inner store; they are never surfaced.
type CachedStore struct {
	inner  Store
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedStore(inner Store, rdb *redis.Client, ttl time.Duration, log logger.Logger) *CachedStore {
	return &CachedStore{
		inner:  inner,
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "portfolio-cache"}),
	}
}

func (s *CachedStore) Load(ctx context.Context, userID string) (*models.Portfolio, error) {
	key := cacheKeyPrefix + userID
	if val, err := s.redis.Get(ctx, key).Result(); err == nil {
		var p models.Portfolio
		if err := json.Unmarshal([]byte(val), &p); err == nil {
			return &p, nil
		}
	}

	p, err := s.inner.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
			s.logger.Warn("cache write failed", map[string]interface{}{
				"userId": userID,
				"error":  err.Error(),
			})
		}
	}
	return p, nil
}

func (s *CachedStore) Save(ctx context.Context, userID string, p *models.Portfolio) error {
	if err := s.inner.Save(ctx, userID, p); err != nil {
		return err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := s.redis.Set(ctx, cacheKeyPrefix+userID, data, s.ttl).Err(); err != nil {
			s.logger.Warn("cache write failed", map[string]interface{}{
				"userId": userID,
				"error":  err.Error(),
			})
		}
	}
	return nil
}

func (s *CachedStore) Clear(ctx context.Context, userID string) error {
	if err := s.inner.Clear(ctx, userID); err != nil {
		return err
	}

	if err := s.redis.Del(ctx, cacheKeyPrefix+userID).Err(); err != nil {
		s.logger.Warn("cache invalidation failed", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
	}
	return nil
}
