// File: teerenta/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teerenta/config"
	"teerenta/cron"
	"teerenta/database"
	bookingRepoPkg "teerenta/database/repository/booking"
	itemRepoPkg "teerenta/database/repository/item"
	promoRepoPkg "teerenta/database/repository/promo"
	touristRepoPkg "teerenta/database/repository/tourist"
	"teerenta/handlers"
	"teerenta/middleware"
	"teerenta/routes"
	"teerenta/services/booking"
	"teerenta/services/item"
	"teerenta/services/promo"
	"teerenta/services/tourist"
	"teerenta/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	itemRepo := itemRepoPkg.NewMongoItemRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	promoRepo := promoRepoPkg.NewMongoPromoRepo()
	touristRepo := touristRepoPkg.NewMongoTouristRepo()

	// services.
	promoService := &promo.DefaultPromoService{
		Repo:   promoRepo,
		Logger: logger,
	}
	itemService := &item.DefaultItemService{
		Repo:   itemRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}
	touristService := &tourist.DefaultTouristService{
		Repo:   touristRepo,
		Logger: logger,
	}
	gateway := booking.NewStripeGateway(
		time.Duration(config.AppConfig.PaymentTimeoutSecs)*time.Second, logger)
	bookingService := &booking.DefaultBookingService{
		Items:       itemRepo,
		Bookings:    bookingRepo,
		Tourists:    touristRepo,
		Promos:      promoService,
		Gateway:     gateway,
		Currency:    config.AppConfig.Currency,
		MinimumAges: booking.DefaultMinimumAges,
		LoyaltyRate: config.AppConfig.LoyaltyRate,
		Logger:      logger,
	}

	// handlers.
	itemHandler := handlers.NewItemHandler(itemService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	promoHandler := handlers.NewPromoHandler(promoService, logger)
	touristHandler := handlers.NewTouristHandler(touristService, logger)

	routes.RegisterRoutes(router, itemHandler, bookingHandler, promoHandler, touristHandler)

	// Schedule the deadline sweeper.
	sweeper := &cron.Sweeper{Bookings: bookingRepo, Logger: logger}
	scheduler, err := cron.StartSweeper(sweeper, config.AppConfig.SweepSchedule)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to schedule deadline sweeper: %v", err)
	}

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

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
