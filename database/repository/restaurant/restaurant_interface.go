package restaurantRepo

import "savora/models"

// Filter narrows restaurant listings. Zero values mean "no constraint".
type Filter struct {
	City    string
	State   string
	Cuisine string
	// Search matches name, description or cuisine, case-insensitive.
	Search string
	Skip   int64
	Limit  int64
}

// RestaurantRepository defines methods for restaurant data access.
type RestaurantRepository interface {
	// ListActive retrieves active restaurants matching the filter.
	ListActive(f Filter) ([]models.Restaurant, error)
	// GetByID retrieves a restaurant by its unique ID, nil when absent.
	GetByID(id string) (*models.Restaurant, error)
	// Create inserts a new restaurant record.
	Create(restaurant *models.Restaurant) error
	// Update modifies an existing restaurant record.
	Update(restaurant *models.Restaurant) error
	// DistinctActive returns the distinct values of a field across active
	// restaurants, e.g. cuisines or cities.
	DistinctActive(field string) ([]string, error)
	// CountActive counts active restaurants.
	CountActive() (int64, error)
}
