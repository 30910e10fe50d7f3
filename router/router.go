package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/restaurant-api/config"
	"github.com/littlelemon/restaurant-api/controllers"
	"github.com/littlelemon/restaurant-api/middlewares"
	"github.com/littlelemon/restaurant-api/models"
	"github.com/littlelemon/restaurant-api/repository"
)

// Stores are the gateways the handlers read and write through.
type Stores struct {
	MenuItems repository.Gateway[models.MenuItem]
	Bookings  repository.Gateway[models.Booking]
}

func SetupRouter(cfg *config.Config, stores Stores) *gin.Engine {
	r := gin.New()

	rateLimiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders(false))
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))
	r.Use(rateLimiter.RateLimit())

	menuItemCtrl := controllers.NewMenuItemController(stores.MenuItems)
	bookingCtrl := controllers.NewBookingController(stores.Bookings)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// MENU ITEMS
	r.GET("/menu-items/", menuItemCtrl.GetAllMenuItems)
	r.POST("/menu-items/", menuItemCtrl.CreateMenuItem)
	r.GET("/menu-items/:id/", menuItemCtrl.GetMenuItemByID)
	r.PUT("/menu-items/:id/", menuItemCtrl.UpdateMenuItem)
	r.PATCH("/menu-items/:id/", menuItemCtrl.PartialUpdateMenuItem)
	r.DELETE("/menu-items/:id/", menuItemCtrl.DeleteMenuItem)

	// BOOKINGS
	r.GET("/bookings/", bookingCtrl.GetAllBookings)
	r.POST("/bookings/", bookingCtrl.CreateBooking)
	r.GET("/bookings/:id/", bookingCtrl.GetBookingByID)
	r.PUT("/bookings/:id/", bookingCtrl.UpdateBooking)
	r.PATCH("/bookings/:id/", bookingCtrl.PartialUpdateBooking)
	r.DELETE("/bookings/:id/", bookingCtrl.DeleteBooking)

	return r
}
