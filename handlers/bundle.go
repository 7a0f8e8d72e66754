package handlers

import (
	userRepoPkg "savora/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetCurrentUserHandler   gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	ChangePasswordHandler   gin.HandlerFunc

	// Restaurant discovery endpoints
	ListRestaurantsHandler   gin.HandlerFunc
	GetRestaurantHandler     gin.HandlerFunc
	NearbyRestaurantsHandler gin.HandlerFunc
	RestaurantSlotsHandler   gin.HandlerFunc
	ListCuisinesHandler      gin.HandlerFunc
	ListCitiesHandler        gin.HandlerFunc
	ListStatesHandler        gin.HandlerFunc
	RestaurantStatsHandler   gin.HandlerFunc

	// Reservation endpoints
	CreateReservationHandler gin.HandlerFunc
	ListReservationsHandler  gin.HandlerFunc
	GetReservationHandler    gin.HandlerFunc
	CancelReservationHandler gin.HandlerFunc

	// Voicebot endpoints
	VoiceCommandHandler   gin.HandlerFunc
	VoiceChatHandler      gin.HandlerFunc
	VoiceBookingHandler   gin.HandlerFunc
	VoicebotStatusHandler gin.HandlerFunc
	SpeechToTextHandler   gin.HandlerFunc
}
