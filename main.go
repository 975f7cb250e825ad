package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hms-backend/config"
	"hms-backend/controllers"
	"hms-backend/routes"
	"hms-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	roomService := services.NewRoomService(db)
	roomStatusService := services.NewRoomStatusService(db)
	availabilityService := services.NewAvailabilityService(db)
	bookingService := services.NewBookingService(db)
	stockService := services.NewStockService(db)
	slipService := services.NewPaymentSlipService(db)

	// Initialize controllers
	bookingController := controllers.NewBookingController(bookingService)
	roomController := controllers.NewRoomController(roomService, roomStatusService, availabilityService)
	stockController := controllers.NewStockController(stockService)
	slipController := controllers.NewPaymentSlipController(slipService)

	router := routes.SetupRouter(bookingController, roomController, stockController, slipController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
