package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"savora/config"
	"savora/cron"
	"savora/database"
	reservationRepoPkg "savora/database/repository/reservation"
	restaurantRepoPkg "savora/database/repository/restaurant"
	userRepoPkg "savora/database/repository/user"
	"savora/handlers"
	"savora/middleware"
	"savora/routes"
	"savora/services/notification"
	"savora/services/reservation"
	"savora/services/restaurant"
	"savora/services/user"
	"savora/services/voicebot"
	"savora/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	restaurantRepo := restaurantRepoPkg.NewMongoRestaurantRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()

	// Reminder queue client; the background worker consumes the same queue.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer taskClient.Close()

	// services.
	emailService := notification.NewResendEmailService()
	cron.InitReminderWorker(emailService, reservationRepo, userRepo)

	userService := &user.DefaultUserService{
		Repo:  userRepo,
		Email: emailService,
	}

	restaurantService := &restaurant.DefaultRestaurantService{
		Repo: restaurantRepo,
	}

	reservationService := &reservation.DefaultReservationService{
		Repo:           reservationRepo,
		RestaurantRepo: restaurantRepo,
		Email:          emailService,
		Tasks:          taskClient,
	}

	// The Gemini model powers intent resolution; without a key the resolver
	// runs on deterministic fallbacks only.
	var model voicebot.ModelClient
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		client, err := voicebot.NewGeminiClient(context.Background(), key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
		}
		defer client.Close()
		model = client
	} else {
		logger.Sugar().Warn("main: GEMINI_API_KEY not set, voicebot runs without AI")
	}
	resolver := voicebot.NewResolver(model)

	// handlers.
	authHandler := &handlers.AuthHandler{UserService: userService}
	restaurantHandler := &handlers.RestaurantHandler{RestaurantService: restaurantService}
	reservationHandler := &handlers.ReservationHandler{
		ReservationService: reservationService,
		UserService:        userService,
	}
	voicebotHandler := &handlers.VoicebotHandler{
		Resolver:           resolver,
		RestaurantService:  restaurantService,
		ReservationService: reservationService,
		ReservationAuth:    reservationHandler,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterUserHandler:     authHandler.RegisterUserHandler,
		AuthenticateUserHandler: authHandler.AuthenticateUserHandler,
		GetCurrentUserHandler:   authHandler.GetCurrentUserHandler,
		UpdateProfileHandler:    authHandler.UpdateProfileHandler,
		ChangePasswordHandler:   authHandler.ChangePasswordHandler,

		// Restaurant discovery endpoints.
		ListRestaurantsHandler:   restaurantHandler.ListRestaurantsHandler,
		GetRestaurantHandler:     restaurantHandler.GetRestaurantHandler,
		NearbyRestaurantsHandler: restaurantHandler.NearbyRestaurantsHandler,
		RestaurantSlotsHandler:   restaurantHandler.RestaurantSlotsHandler,
		ListCuisinesHandler:      restaurantHandler.ListCuisinesHandler,
		ListCitiesHandler:        restaurantHandler.ListCitiesHandler,
		ListStatesHandler:        restaurantHandler.ListStatesHandler,
		RestaurantStatsHandler:   restaurantHandler.RestaurantStatsHandler,

		// Reservation endpoints.
		CreateReservationHandler: reservationHandler.CreateReservationHandler,
		ListReservationsHandler:  reservationHandler.ListReservationsHandler,
		GetReservationHandler:    reservationHandler.GetReservationHandler,
		CancelReservationHandler: reservationHandler.CancelReservationHandler,

		// Voicebot endpoints.
		VoiceCommandHandler:   voicebotHandler.VoiceCommandHandler,
		VoiceChatHandler:      voicebotHandler.VoiceChatHandler,
		VoiceBookingHandler:   voicebotHandler.VoiceBookingHandler,
		VoicebotStatusHandler: voicebotHandler.VoicebotStatusHandler,
		SpeechToTextHandler:   handlers.SpeechToTextHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	database.CloseDB()
	logger.Sugar().Info("main: server stopped gracefully")
}
