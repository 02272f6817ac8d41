package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitsched/config"
	"fitsched/database"
	recordsRepo "fitsched/database/repository/records"
	"fitsched/handlers"
	"fitsched/middleware"
	"fitsched/routes"
	"fitsched/services/assignment"
	"fitsched/services/calendar"
	"fitsched/services/review"
	"fitsched/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitReviewCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	recRepo := recordsRepo.NewMongoRecordRepo()

	// services.
	calendarService := calendar.NewDefaultCalendarService(recRepo)
	assignmentClient := assignment.NewHTTPClient(config.AppConfig.AssignmentServiceURL)
	sessionStore := review.NewRedisSessionStore(
		utils.GetReviewCacheClient(),
		time.Duration(config.AppConfig.ReviewSessionTTLMin)*time.Minute,
	)
	reviewService := &review.DefaultReviewService{
		Assignment: assignmentClient,
		Calendar:   calendarService,
		Sessions:   sessionStore,
	}

	calendarHandler := handlers.NewCalendarHandler(calendarService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)

	routes.RegisterRoutes(router, calendarHandler, reviewHandler)

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
