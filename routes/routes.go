// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"tripmate/handlers"
	"tripmate/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the inbound message endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.POST("", hb.MessagesHandler)
		api.POST("/scripted", hb.ScriptedMessageHandler)
		api.POST("/reset", hb.ResetConversationHandler)
	}
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.LoginUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/me/preferences", hb.UpdatePreferencesHandler)
		api.POST("/me/payment-methods", hb.AddPaymentMethodHandler)
		api.DELETE("/me/payment-methods/:id", hb.RemovePaymentMethodHandler)
	}
}

// RegisterTravelRoutes registers the booking-provider endpoints.
func RegisterTravelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/travel")
	{
		api.POST("/flights/search", hb.SearchFlightsHandler)
		api.GET("/flights/:flightNumber/add-ons", hb.FlightAddOnsHandler)
		api.POST("/hotels/search", hb.SearchHotelsHandler)
		api.GET("/hotels/:id", hb.HotelDetailsHandler)
		api.GET("/hotels/:id/rooms", hb.HotelRoomsHandler)
		api.GET("/hotels/:id/nearby-restaurants", hb.NearbyRestaurantsHandler)
		api.POST("/transportation/search", hb.SearchTransportationHandler)
		api.POST("/restaurants/search", hb.SearchRestaurantsHandler)
		api.POST("/attractions/search", hb.SearchAttractionsHandler)
		api.GET("/attractions/top", hb.TopAttractionsHandler)

		// Booking endpoints require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/flights/book", hb.BookFlightHandler)
		protected.POST("/hotels/book", hb.BookRoomHandler)
		protected.POST("/transportation/book", hb.BookTransportationHandler)
		protected.POST("/restaurants/reserve", hb.MakeReservationHandler)
		protected.GET("/bookings", hb.ListBookingsHandler)
		protected.DELETE("/bookings/:id", hb.CancelBookingHandler)
	}
}

// RegisterContentRoutes registers the support-content admin endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.AddContentHandler)
		api.GET("/:id", hb.GetContentHandler)
		api.PATCH("/:id", hb.UpdateContentHandler)
		api.DELETE("/:id", hb.DeleteContentHandler)
		api.POST("/bulk-import", hb.BulkImportContentHandler)
		api.GET("/search", hb.SearchContentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Tripmate"})
	})
}

// RegisterWebRoutes serves the minimal chat front end.
func RegisterWebRoutes(r *gin.Engine) {
	r.StaticFile("/", "./web/index.html")
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterTravelRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterWebRoutes(r)
}
