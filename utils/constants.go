package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// RestaurantListCacheKey is the Redis key under which the active restaurant
// list is cached for the voicebot route.
const RestaurantListCacheKey = "restaurants:active"

// RestaurantListCacheTTL bounds staleness of the cached restaurant list.
const RestaurantListCacheTTL = 5 * time.Minute
