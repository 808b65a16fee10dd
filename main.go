// File: tripmate/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripmate/config"
	"tripmate/database"
	"tripmate/database/repository"
	bookingRepoPkg "tripmate/database/repository/booking"
	conversationRepoPkg "tripmate/database/repository/conversation"
	supportRepoPkg "tripmate/database/repository/support"
	userRepoPkg "tripmate/database/repository/user"
	"tripmate/handlers"
	"tripmate/middleware"
	"tripmate/routes"
	"tripmate/services/conversation"
	"tripmate/services/knowledge"
	"tripmate/services/travel"
	"tripmate/services/user"
	"tripmate/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	store := repository.NewMongoDocumentStore()
	userRepo := userRepoPkg.NewDocumentUserRepo(store)
	bookingRepo := bookingRepoPkg.NewDocumentBookingRepo(store)
	conversationRepo := conversationRepoPkg.NewDocumentConversationRepo(store)
	supportRepo := supportRepoPkg.NewMongoSupportRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	knowledgeService := &knowledge.DefaultKnowledgeService{
		Repo:     supportRepo,
		Embedder: knowledge.NewGeminiEmbedder(config.AppConfig.GeminiAPIKey, config.AppConfig.EmbeddingModel),
	}

	conversationService := &conversation.DefaultConversationService{
		Repo:      conversationRepo,
		Cache:     conversation.NewStateCache(utils.GetCacheClient(), 30*time.Minute),
		Knowledge: knowledgeService,
		Model:     conversation.NewCompletionModelFromConfig(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:    userRepo,
		BookingRepo: bookingRepo,

		ConversationSvc: conversationService,
		UserSvc:         userService,
		KnowledgeSvc:    knowledgeService,

		Airline:        travel.NewAirlineClient(config.AppConfig.AirlineAPIKey, config.AppConfig.AirlineAPIURL),
		Hotels:         travel.NewHotelClient(config.AppConfig.HotelAPIKey, config.AppConfig.HotelAPIURL),
		Transportation: travel.NewTransportationClient(config.AppConfig.TransportAPIKey, config.AppConfig.TransportAPIURL),
		Restaurants:    travel.NewRestaurantClient(config.AppConfig.RestaurantAPIKey, config.AppConfig.RestaurantAPIURL),
		Attractions:    travel.NewAttractionClient(config.AppConfig.AttractionsAPIKey, config.AppConfig.AttractionsAPIURL),
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

	logger.Sugar().Info("main: server stopped gracefully")
}
