package models

import "time"

// DayHours holds a single weekday's opening window. Close may be numerically
// earlier than Open, meaning the restaurant closes after midnight.
type DayHours struct {
	Open     string `bson:"open" json:"open"`
	Close    string `bson:"close" json:"close"`
	IsClosed bool   `bson:"is_closed" json:"is_closed"`
}

// OperatingHours maps lowercase weekday names ("monday".."sunday") to hours.
type OperatingHours map[string]DayHours

// Restaurant is a bookable restaurant document.
type Restaurant struct {
	ID             string         `bson:"id" json:"id"`
	Name           string         `bson:"name" json:"name"`
	City           string         `bson:"city" json:"city"`
	State          string         `bson:"state" json:"state"`
	Cuisine        string         `bson:"cuisine" json:"cuisine"`
	Rating         float64        `bson:"rating" json:"rating"`
	PriceRange     string         `bson:"price_range" json:"price_range"`
	Description    string         `bson:"description,omitempty" json:"description,omitempty"`
	Address        string         `bson:"address" json:"address"`
	Phone          string         `bson:"phone,omitempty" json:"phone,omitempty"`
	ImageURL       string         `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Latitude       float64        `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude      float64        `bson:"longitude,omitempty" json:"longitude,omitempty"`
	OperatingHours OperatingHours `bson:"operating_hours" json:"operating_hours"`
	// Timezone is an IANA zone name. Empty falls back to the configured default.
	Timezone  string    `bson:"timezone,omitempty" json:"timezone,omitempty"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// OpenStatus reports whether a restaurant is open at this instant.
type OpenStatus struct {
	IsOpen      bool      `json:"is_open"`
	Status      string    `json:"status"` // "open", "closed", "closed_today", "hours_not_available"
	CurrentDay  string    `json:"current_day,omitempty"`
	CurrentTime string    `json:"current_time,omitempty"`
	TodayHours  *DayHours `json:"today_hours,omitempty"`
	NextChange  string    `json:"next_change,omitempty"`
}

// DayHoursDisplay is a human-readable rendering of one weekday's hours.
type DayHoursDisplay struct {
	Display  string `json:"display"`
	IsClosed bool   `json:"is_closed"`
	Open     string `json:"open,omitempty"`
	Close    string `json:"close,omitempty"`
}

// RestaurantWithStatus decorates a restaurant with live status information
// for the discovery endpoints.
type RestaurantWithStatus struct {
	Restaurant
	Status         OpenStatus                 `json:"status"`
	FormattedHours map[string]DayHoursDisplay `json:"formatted_hours"`
	Distance       float64                    `json:"distance,omitempty"`
}
