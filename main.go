package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"requesto/config"
	"requesto/database"
	bookingRepoPkg "requesto/database/repository/booking"
	professionalRepoPkg "requesto/database/repository/professional"
	userRepoPkg "requesto/database/repository/user"
	"requesto/handlers"
	"requesto/middleware"
	"requesto/routes"
	"requesto/services/booking"
	"requesto/services/identity"
	"requesto/services/professional"
	"requesto/services/user"
	"requesto/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect from MongoDB: %v", err)
		}
	}()
	db := client.Database(config.AppConfig.DatabaseName)
	logger.Sugar().Info("Connected to MongoDB")

	if err := database.SeedProfessionals(db); err != nil {
		logger.Sugar().Fatalf("main: failed to seed professionals: %v", err)
	}
	utils.StartHealthMonitor(client)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	professionalRepo := professionalRepoPkg.NewMongoProfessionalRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	professionalService := &professional.DefaultProfessionalService{
		Repo:  professionalRepo,
		Users: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:             bookingRepo,
		Users:            userRepo,
		Professionals:    professionalService,
		VideoCallBaseURL: config.AppConfig.VideoCallBaseURL,
	}
	verifier := identity.NewHTTPVerifier(config.AppConfig.IdentityUserInfoURL)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:      userRepo,
		Auth:          handlers.NewAuthHandler(verifier, userService),
		Booking:       handlers.NewBookingHandler(bookingService),
		Provider:      handlers.NewProviderHandler(professionalService, bookingService),
		Professionals: handlers.NewProfessionalHandler(professionalService),
		Admin:         handlers.NewAdminHandler(userService, bookingService),
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
