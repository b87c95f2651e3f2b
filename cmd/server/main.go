package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"workout-tracker/internal/api"
	"workout-tracker/internal/config"
	"workout-tracker/internal/repository/sqlite"
	"workout-tracker/internal/service"
)

func main() {
	log.Println("Starting Workout Tracker Server...")

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if cfg.Auth.TokenSecret == "" || cfg.Auth.PasswordSecret == "" {
		log.Fatal("FATAL: auth.token_secret and auth.password_secret must be configured")
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	db, err := sqlite.NewDB(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("FATAL: Could not open database: %v", err)
	}
	log.Println("Database connection established.")

	// --- Initialize Repositories ---
	userRepo := sqlite.NewUserRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.Auth.TokenSecret, cfg.Auth.PasswordSecret, cfg.Auth.TokenExpiration)
	workoutService := service.NewWorkoutService(workoutRepo, userRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.Auth.TokenSecret, authService, workoutService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
