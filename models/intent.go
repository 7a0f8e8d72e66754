package models

// Intent categories produced by the resolver.
const (
	IntentReservation = "reservation"
	IntentGreeting    = "greeting"
	IntentQuestion    = "question"
	IntentHelp        = "help"
	IntentOther       = "other"
)

// Actions the route layer is expected to take on a resolved intent.
const (
	ActionBookTable       = "book_table"
	ActionShowRestaurants = "show_restaurants"
	ActionAskClarify      = "ask_clarification"
	ActionProvideInfo     = "provide_info"
)

// RestaurantMatch is the outcome of matching free text against the candidate
// restaurant list. Found is only ever true when Confidence clears the
// matcher's acceptance floor.
type RestaurantMatch struct {
	Found        bool        `json:"found"`
	Name         string      `json:"name"`
	Confidence   float64     `json:"confidence"`
	RestaurantID string      `json:"restaurant_id,omitempty"`
	Restaurant   *Restaurant `json:"-"`
	Alternatives []string    `json:"alternatives,omitempty"`
}

// ReservationDetails are the slots extracted from the command.
type ReservationDetails struct {
	Guests          int    `json:"guests"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM, empty when not mentioned
	SpecialRequests string `json:"special_requests,omitempty"`
}

// TimeValidation carries the operating-hours check outcome.
type TimeValidation struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message,omitempty"`
}

// ReservationIntent is the structured result handed back to the route layer.
// ActionRequired is only ever ActionBookTable when a restaurant was matched,
// a time was given, and the time passed validation.
type ReservationIntent struct {
	Intent             string             `json:"intent"`
	Confidence         float64            `json:"confidence"`
	RestaurantMatch    RestaurantMatch    `json:"restaurant_match"`
	ReservationDetails ReservationDetails `json:"reservation_details"`
	TimeValidation     TimeValidation     `json:"time_validation"`
	ResponseMessage    string             `json:"response_message"`
	ActionRequired     string             `json:"action_required"`
}
