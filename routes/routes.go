package routes

import (
	"net/http"
	"time"

	"savora/handlers"
	"savora/middleware"
	"savora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetCurrentUserHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/password", hb.ChangePasswordHandler)
	}
}

// RegisterRestaurantRoutes registers public discovery endpoints.
func RegisterRestaurantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/restaurants")
	{
		api.GET("", hb.ListRestaurantsHandler)
		api.GET("/nearby", hb.NearbyRestaurantsHandler)
		api.GET("/cuisines", hb.ListCuisinesHandler)
		api.GET("/cities", hb.ListCitiesHandler)
		api.GET("/states", hb.ListStatesHandler)
		api.GET("/stats", hb.RestaurantStatsHandler)
		api.GET("/:id", hb.GetRestaurantHandler)
		api.GET("/:id/slots", hb.RestaurantSlotsHandler)
	}
}

// RegisterReservationRoutes registers booking endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateReservationHandler)
		api.GET("", hb.ListReservationsHandler)
		api.GET("/:id", hb.GetReservationHandler)
		api.DELETE("/:id", hb.CancelReservationHandler)
	}
}

// RegisterVoicebotRoutes registers the natural-language endpoints.
func RegisterVoicebotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/voicebot")
	{
		api.GET("/status", hb.VoicebotStatusHandler)
		api.POST("/process", hb.VoiceCommandHandler)
		api.POST("/chat", hb.VoiceChatHandler)
		api.POST("/stt", hb.SpeechToTextHandler)

		// Booking from a resolved intent requires authentication.
		api.POST("/book", middleware.JWTAuthMiddleware(hb.UserRepo), hb.VoiceBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm Savora",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterRestaurantRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterVoicebotRoutes(r, hb)
	RegisterHealthRoute(r)
}
