package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hms-backend/controllers"
	"hms-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the API surface. All invariants live
// in the services layer; everything here is transport.
func SetupRouter(
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	sc *controllers.StockController,
	pc *controllers.PaymentSlipController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)

			// must sit before /:id routes
			rooms.GET("/available", rc.GetAvailableRooms)

			rooms.POST("/:id/status", rc.ChangeStatus)
			rooms.GET("/:id/status-log", rc.StatusHistory)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.POST("/:id/status", bc.ChangeStatus)
			bookings.POST("/:id/payments", bc.RecordPayment)
		}

		stock := api.Group("/stock")
		{
			stock.GET("/low", sc.GetLowStock)
			stock.GET("/movements", sc.ListMovements)
			stock.POST("/movements", sc.RecordMovement)
		}

		slips := api.Group("/payment-slips")
		{
			slips.GET("", pc.List)
			slips.POST("", pc.Submit)
			slips.POST("/:id/verify", pc.Verify)
		}
	}

	return r
}
