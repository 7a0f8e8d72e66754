package models

import "time"

// Reservation statuses.
const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Booking methods.
const (
	BookingMethodWeb   = "web"
	BookingMethodVoice = "voice_command"
)

// Reservation is a confirmed table booking.
type Reservation struct {
	ID              string     `bson:"id" json:"id"`
	RestaurantID    string     `bson:"restaurant_id" json:"restaurant_id"`
	RestaurantName  string     `bson:"restaurant_name" json:"restaurant_name"`
	UserID          string     `bson:"user_id" json:"user_id"`
	UserEmail       string     `bson:"user_email" json:"user_email"`
	Date            string     `bson:"date" json:"date"` // YYYY-MM-DD
	Time            string     `bson:"time" json:"time"` // HH:MM
	Guests          int        `bson:"guests" json:"guests"`
	SpecialRequests string     `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	Status          string     `bson:"status" json:"status"`
	BookingMethod   string     `bson:"booking_method" json:"booking_method"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	CancelledAt     *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
}
