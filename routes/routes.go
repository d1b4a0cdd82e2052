package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rental-backend/controllers"
	"rental-backend/middleware"
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

// SetupRouter wires the controllers into the gin engine.
func SetupRouter(
	ac *controllers.AuthController,
	lc *controllers.ListingController,
	bc *controllers.BookingController,
	rc *controllers.ReviewController,
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
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/me", middleware.RequireAuth(), ac.Me)
		}

		listings := api.Group("/listings")
		{
			listings.GET("", lc.GetListings)
			listings.GET("/:id", lc.GetListingByID)
			listings.GET("/:id/reviews", rc.GetListingReviews)

			listings.POST("", middleware.RequireAuth(), lc.CreateListing)
			listings.PUT("/:id", middleware.RequireAuth(), lc.UpdateListing)
			listings.DELETE("/:id", middleware.RequireAuth(), lc.DeleteListing)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth())
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.POST("", bc.CreateBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.PATCH("/:id/status", bc.UpdateBookingStatus)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		reviews := api.Group("/reviews", middleware.RequireAuth())
		{
			reviews.POST("", rc.CreateReview)
		}
	}

	return r
}
