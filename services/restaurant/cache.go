package restaurant

import (
	"context"
	"encoding/json"
	"time"

	restaurantRepo "savora/database/repository/restaurant"
	"savora/models"
	"savora/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ActiveForMatching returns the full active list for voice command matching.
// The list is served from Redis when fresh; cache trouble falls through to
// the database.
func (s *DefaultRestaurantService) ActiveForMatching() ([]models.Restaurant, error) {
	logger := utils.GetLogger()
	cache := utils.GetCacheClient()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cached, err := cache.Get(ctx, utils.RestaurantListCacheKey).Result()
	if err == nil {
		var restaurants []models.Restaurant
		if err := json.Unmarshal([]byte(cached), &restaurants); err == nil {
			return restaurants, nil
		}
		logger.Warn("discarding corrupt restaurant list cache entry")
	} else if err != redis.Nil {
		logger.Warn("restaurant list cache read failed", zap.Error(err))
	}

	restaurants, err := s.Repo.ListActive(restaurantRepo.Filter{})
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(restaurants); err == nil {
		if err := cache.Set(ctx, utils.RestaurantListCacheKey, payload, utils.RestaurantListCacheTTL).Err(); err != nil {
			logger.Warn("restaurant list cache write failed", zap.Error(err))
		}
	}
	return restaurants, nil
}
