package handlers

import (
	"net/http"
	"strconv"

	restaurantRepo "savora/database/repository/restaurant"
	"savora/services/restaurant"
	"savora/services/voicebot"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RestaurantHandler exposes the discovery endpoints.
type RestaurantHandler struct {
	RestaurantService restaurant.RestaurantService
}

// ListRestaurantsHandler handles GET /api/restaurants.
// Supported query params: city, state, cuisine, search, skip, limit.
func (h *RestaurantHandler) ListRestaurantsHandler(c *gin.Context) {
	filter := restaurantRepo.Filter{
		City:    c.Query("city"),
		State:   c.Query("state"),
		Cuisine: c.Query("cuisine"),
		Search:  c.Query("search"),
	}
	if skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64); err == nil && skip > 0 {
		filter.Skip = skip
	}
	if limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64); err == nil && limit > 0 {
		filter.Limit = limit
	}

	restaurants, err := h.RestaurantService.List(filter)
	if err != nil {
		getLogger(c).Error("Failed to list restaurants", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants, "count": len(restaurants)})
}

// GetRestaurantHandler handles GET /api/restaurants/:id.
func (h *RestaurantHandler) GetRestaurantHandler(c *gin.Context) {
	id := c.Param("id")

	r, err := h.RestaurantService.Get(id)
	if err != nil {
		getLogger(c).Error("Failed to fetch restaurant", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurant"})
		return
	}
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// NearbyRestaurantsHandler handles GET /api/restaurants/nearby.
// Requires lat and lng; radius_km defaults to 10, limit to 20.
func (h *RestaurantHandler) NearbyRestaurantsHandler(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}

	radius := 10.0
	if r, err := strconv.ParseFloat(c.Query("radius_km"), 64); err == nil && r > 0 {
		radius = r
	}
	limit := 20
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		limit = n
	}

	restaurants, err := h.RestaurantService.Nearby(lat, lng, radius, limit)
	if err != nil {
		getLogger(c).Error("Failed to find nearby restaurants", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find nearby restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants, "count": len(restaurants)})
}

// RestaurantSlotsHandler handles GET /api/restaurants/:id/slots.
// The date query param defaults to today.
func (h *RestaurantHandler) RestaurantSlotsHandler(c *gin.Context) {
	id := c.Param("id")
	date := c.Query("date")
	if date == "" {
		date = voicebot.Today()
	}

	slots, err := h.RestaurantService.TimeSlots(id, date)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots, "count": len(slots)})
}

// ListCuisinesHandler handles GET /api/restaurants/cuisines.
func (h *RestaurantHandler) ListCuisinesHandler(c *gin.Context) {
	h.listDistinct(c, "cuisines", h.RestaurantService.Cuisines)
}

// ListCitiesHandler handles GET /api/restaurants/cities.
func (h *RestaurantHandler) ListCitiesHandler(c *gin.Context) {
	h.listDistinct(c, "cities", h.RestaurantService.Cities)
}

// ListStatesHandler handles GET /api/restaurants/states.
func (h *RestaurantHandler) ListStatesHandler(c *gin.Context) {
	h.listDistinct(c, "states", h.RestaurantService.States)
}

func (h *RestaurantHandler) listDistinct(c *gin.Context, key string, fetch func() ([]string, error)) {
	values, err := fetch()
	if err != nil {
		getLogger(c).Error("Failed to list "+key, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list " + key})
		return
	}
	c.JSON(http.StatusOK, gin.H{key: values})
}

// RestaurantStatsHandler handles GET /api/restaurants/stats.
func (h *RestaurantHandler) RestaurantStatsHandler(c *gin.Context) {
	stats, err := h.RestaurantService.Stats()
	if err != nil {
		getLogger(c).Error("Failed to compute stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
