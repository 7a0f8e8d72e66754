package restaurant

import (
	"fmt"
	"math"
	"sort"

	restaurantRepo "savora/database/repository/restaurant"
	"savora/models"
	"savora/services/voicebot"
)

const earthRadiusKm = 6371.0

// List retrieves active restaurants with live open status.
func (s *DefaultRestaurantService) List(f restaurantRepo.Filter) ([]models.RestaurantWithStatus, error) {
	restaurants, err := s.Repo.ListActive(f)
	if err != nil {
		return nil, err
	}
	return withStatuses(restaurants), nil
}

// Get retrieves one restaurant with live open status, nil when absent.
func (s *DefaultRestaurantService) Get(id string) (*models.RestaurantWithStatus, error) {
	r, err := s.Repo.GetByID(id)
	if err != nil || r == nil {
		return nil, err
	}
	enriched := voicebot.WithStatus(*r)
	return &enriched, nil
}

// Nearby retrieves active restaurants within radiusKm of a point, closest first.
func (s *DefaultRestaurantService) Nearby(lat, lng, radiusKm float64, limit int) ([]models.RestaurantWithStatus, error) {
	restaurants, err := s.ActiveForMatching()
	if err != nil {
		return nil, err
	}

	var nearby []models.RestaurantWithStatus
	for _, r := range restaurants {
		if r.Latitude == 0 && r.Longitude == 0 {
			continue
		}
		dist := haversineKm(lat, lng, r.Latitude, r.Longitude)
		if dist > radiusKm {
			continue
		}
		enriched := voicebot.WithStatus(r)
		enriched.Distance = math.Round(dist*100) / 100
		nearby = append(nearby, enriched)
	}

	sort.Slice(nearby, func(i, j int) bool { return nearby[i].Distance < nearby[j].Distance })
	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}

// TimeSlots lists bookable times for a restaurant on a date.
func (s *DefaultRestaurantService) TimeSlots(id, date string) ([]string, error) {
	r, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("restaurant %s not found", id)
	}
	return voicebot.AvailableTimeSlots(r, date), nil
}

// Cuisines lists distinct cuisines across active restaurants.
func (s *DefaultRestaurantService) Cuisines() ([]string, error) {
	return s.distinctSorted("cuisine")
}

// Cities lists distinct cities across active restaurants.
func (s *DefaultRestaurantService) Cities() ([]string, error) {
	return s.distinctSorted("city")
}

// States lists distinct states across active restaurants.
func (s *DefaultRestaurantService) States() ([]string, error) {
	return s.distinctSorted("state")
}

// Stats summarizes the discovery catalog.
func (s *DefaultRestaurantService) Stats() (*Stats, error) {
	total, err := s.Repo.CountActive()
	if err != nil {
		return nil, err
	}
	cities, err := s.Cities()
	if err != nil {
		return nil, err
	}
	states, err := s.States()
	if err != nil {
		return nil, err
	}
	cuisines, err := s.Cuisines()
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalRestaurants: total,
		Cities:           cities,
		States:           states,
		Cuisines:         cuisines,
	}, nil
}

func (s *DefaultRestaurantService) distinctSorted(field string) ([]string, error) {
	values, err := s.Repo.DistinctActive(field)
	if err != nil {
		return nil, err
	}
	sort.Strings(values)
	return values, nil
}

func withStatuses(restaurants []models.Restaurant) []models.RestaurantWithStatus {
	out := make([]models.RestaurantWithStatus, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, voicebot.WithStatus(r))
	}
	return out
}

// haversineKm computes the great-circle distance between two points.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
