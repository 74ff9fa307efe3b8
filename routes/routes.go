package routes

import (
	"net/http"
	"time"

	"ybhotels/handlers"
	"ybhotels/middleware"
	"ybhotels/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers guest account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Users.Register)
		api.POST("/login", hb.Users.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.Users.Me)
	}
}

// RegisterReceptionRoutes registers the conversational endpoints. Ask works
// with or without a token; anonymous callers get FAQ-level answers only.
func RegisterReceptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reception")
	{
		api.POST("/ask", middleware.AskRateLimitMiddleware(), middleware.OptionalAuthMiddleware(), hb.Reception.Ask)

		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/history/:sessionID", hb.Reception.History)
	}
}

// RegisterRoomRoutes registers the public room catalogue.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.Rooms.List)
		api.GET("/availability", hb.Rooms.Availability)
		api.GET("/:id", hb.Rooms.Get)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.POST("", hb.Bookings.Create)
		bookingGroup.GET("", hb.Bookings.List)
		bookingGroup.GET("/:id", hb.Bookings.Get)
		bookingGroup.POST("/:id/cancel", hb.Bookings.Cancel)
		bookingGroup.POST("/:id/check-in", hb.Bookings.CheckIn)
		bookingGroup.POST("/:id/check-out", hb.Bookings.CheckOut)
		bookingGroup.POST("/:id/upgrade", hb.Bookings.Upgrade)
	}
}

// RegisterGuestServiceRoutes registers food orders, complaints, and the
// notification feed.
func RegisterGuestServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	orders := r.Group("/api/orders")
	{
		orders.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		orders.POST("", hb.Orders.Create)
		orders.GET("", hb.Orders.List)
	}

	complaints := r.Group("/api/complaints")
	{
		complaints.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		complaints.POST("", hb.Complaints.Create)
		complaints.GET("", hb.Complaints.List)
	}

	notifications := r.Group("/api/notifications")
	{
		notifications.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		notifications.GET("", hb.Notifications.List)
		notifications.POST("/:id/read", hb.Notifications.MarkRead)
	}
}

// RegisterAdminRoutes registers front-desk management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		api.GET("/bookings", hb.Admin.ListBookings)
		api.POST("/bookings/:id/confirm", hb.Admin.ConfirmBooking)
		api.POST("/bookings/:id/cancel", hb.Admin.CancelBooking)
		api.GET("/complaints", hb.Admin.ListComplaints)
		api.POST("/complaints/:id/respond", hb.Admin.RespondComplaint)
		api.GET("/orders", hb.Admin.ListOrders)
		api.POST("/rooms", hb.Rooms.Create)
		api.PATCH("/rooms/:id", hb.Rooms.Update)
		api.DELETE("/rooms/:id", hb.Rooms.Delete)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm the YB Hotels reception",
			"deps":    utils.GetHealthStatus(),
		})
	})
}

func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterReceptionRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterGuestServiceRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
