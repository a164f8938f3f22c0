package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"petclinic/config"
	"petclinic/database"
	referenceRepo "petclinic/database/repository/reference"
	reservationRepo "petclinic/database/repository/reservation"
	"petclinic/handlers"
	"petclinic/middleware"
	"petclinic/routes"
	"petclinic/services/booking"
	"petclinic/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// Repositories.
	resRepo, err := reservationRepo.NewMongoReservationRepo()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	refRepo := referenceRepo.NewMongoReferenceRepo()

	// Services.
	bookingService := &booking.DefaultBookingService{
		Repo:      resRepo,
		Reference: refRepo,
		Sessions:  booking.NewSessionStore(utils.GetSessionCacheClient()),
	}

	// Handlers and routes.
	bookingHandler := handlers.NewBookingHandler(bookingService)
	reservationHandler := handlers.NewReservationHandler(bookingService)
	referenceHandler := handlers.NewReferenceHandler(refRepo)

	routes.RegisterBookingRoutes(router, bookingHandler)
	routes.RegisterReservationRoutes(router, reservationHandler)
	routes.RegisterReferenceRoutes(router, referenceHandler)
	routes.RegisterHealthRoute(router)

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
