package restaurant

import (
	restaurantRepo "savora/database/repository/restaurant"
	"savora/models"
)

// Stats summarizes the discovery catalog.
type Stats struct {
	TotalRestaurants int64    `json:"total_restaurants"`
	Cities           []string `json:"cities"`
	States           []string `json:"states"`
	Cuisines         []string `json:"cuisines"`
}

type RestaurantService interface {
	// List retrieves active restaurants with live open status.
	List(f restaurantRepo.Filter) ([]models.RestaurantWithStatus, error)
	// Get retrieves one restaurant with live open status, nil when absent.
	Get(id string) (*models.RestaurantWithStatus, error)
	// Nearby retrieves active restaurants within radiusKm of a point,
	// closest first.
	Nearby(lat, lng, radiusKm float64, limit int) ([]models.RestaurantWithStatus, error)
	// TimeSlots lists bookable times for a restaurant on a date.
	TimeSlots(id, date string) ([]string, error)
	// Cuisines, Cities and States list distinct catalog values.
	Cuisines() ([]string, error)
	Cities() ([]string, error)
	States() ([]string, error)
	// Stats summarizes the catalog.
	Stats() (*Stats, error)
	// ActiveForMatching returns the full active list for voice command
	// matching, served from cache when fresh.
	ActiveForMatching() ([]models.Restaurant, error)
}

// DefaultRestaurantService is the production implementation.
type DefaultRestaurantService struct {
	Repo restaurantRepo.RestaurantRepository
}
