// File: handlers/travel.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tripmate/models"
	"tripmate/services/travel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SearchFlightsHandler proxies a flight search to the airline API.
func (hb *HandlerBundle) SearchFlightsHandler(c *gin.Context) {
	logger := getLogger(c)

	var params travel.FlightSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.Error("Invalid flight search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	flights, err := hb.Airline.SearchFlights(c.Request.Context(), params)
	if err != nil {
		logger.Error("Flight search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": flights})
}

// FlightAddOnsHandler lists add-ons available for a flight.
func (hb *HandlerBundle) FlightAddOnsHandler(c *gin.Context) {
	logger := getLogger(c)

	addOns, err := hb.Airline.GetAvailableAddOns(c.Request.Context(), c.Param("flightNumber"))
	if err != nil {
		logger.Error("Add-on lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"addOns": addOns})
}

// BookFlightHandler books a flight and records the booking for the user.
func (hb *HandlerBundle) BookFlightHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		FlightNumber string                  `json:"flightNumber" binding:"required"`
		Passenger    travel.PassengerDetails `json:"passenger" binding:"required"`
		AddOns       []string                `json:"addOns"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid flight booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reference, err := hb.Airline.BookFlight(c.Request.Context(), req.FlightNumber, req.AddOns, req.Passenger)
	if err != nil {
		logger.Error("Flight booking failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	booking := hb.recordBooking(c, userID.(string), models.BookingFlight, models.BookingDetails{
		Flight: &models.FlightBookingDetails{
			FlightNumber: req.FlightNumber,
			AddOns:       req.AddOns,
			Reference:    reference,
		},
	})
	c.JSON(http.StatusCreated, gin.H{"reference": reference, "booking": booking})
}

// SearchHotelsHandler proxies a hotel search.
func (hb *HandlerBundle) SearchHotelsHandler(c *gin.Context) {
	logger := getLogger(c)

	var params travel.HotelSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.Error("Invalid hotel search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	hotels, err := hb.Hotels.SearchHotels(c.Request.Context(), params)
	if err != nil {
		logger.Error("Hotel search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// HotelDetailsHandler fetches one hotel with its rooms.
func (hb *HandlerBundle) HotelDetailsHandler(c *gin.Context) {
	logger := getLogger(c)

	hotel, err := hb.Hotels.GetHotelDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Error("Hotel details lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// HotelRoomsHandler lists available rooms for a hotel.
func (hb *HandlerBundle) HotelRoomsHandler(c *gin.Context) {
	logger := getLogger(c)

	rooms, err := hb.Hotels.GetAvailableRooms(c.Request.Context(), c.Param("id"), c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		logger.Error("Room lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// BookRoomHandler books a hotel room and records the booking.
func (hb *HandlerBundle) BookRoomHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		HotelID string                    `json:"hotelId" binding:"required"`
		RoomID  string                    `json:"roomId" binding:"required"`
		Details travel.RoomBookingDetails `json:"details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid room booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reference, err := hb.Hotels.BookRoom(c.Request.Context(), req.HotelID, req.RoomID, req.Details)
	if err != nil {
		logger.Error("Room booking failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	booking := hb.recordBooking(c, userID.(string), models.BookingHotel, models.BookingDetails{
		Hotel: &models.HotelBookingDetails{
			HotelID:   req.HotelID,
			RoomID:    req.RoomID,
			CheckIn:   req.Details.CheckIn,
			CheckOut:  req.Details.CheckOut,
			Reference: reference,
		},
	})
	c.JSON(http.StatusCreated, gin.H{"reference": reference, "booking": booking})
}

// NearbyRestaurantsHandler lists restaurants near a hotel.
func (hb *HandlerBundle) NearbyRestaurantsHandler(c *gin.Context) {
	logger := getLogger(c)

	radius, _ := strconv.Atoi(c.DefaultQuery("radius", "2"))
	restaurants, err := hb.Hotels.GetNearbyRestaurants(c.Request.Context(), c.Param("id"), radius)
	if err != nil {
		logger.Error("Nearby restaurant lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// SearchTransportationHandler proxies a ground-transport search.
func (hb *HandlerBundle) SearchTransportationHandler(c *gin.Context) {
	logger := getLogger(c)

	var params travel.TransportationSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.Error("Invalid transportation search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	options, err := hb.Transportation.SearchTransportation(c.Request.Context(), params)
	if err != nil {
		logger.Error("Transportation search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}

// BookTransportationHandler books ground transport and records it.
func (hb *HandlerBundle) BookTransportationHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req travel.TransportationBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid transportation booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reference, err := hb.Transportation.BookTransportation(c.Request.Context(), req)
	if err != nil {
		logger.Error("Transportation booking failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	booking := hb.recordBooking(c, userID.(string), models.BookingTransportation, models.BookingDetails{
		Transportation: &models.TransportationBookingDetails{
			TransportationID: req.TransportationID,
			Passengers:       req.Passengers,
			Reference:        reference,
		},
	})
	c.JSON(http.StatusCreated, gin.H{"reference": reference, "booking": booking})
}

// SearchRestaurantsHandler proxies a restaurant search.
func (hb *HandlerBundle) SearchRestaurantsHandler(c *gin.Context) {
	logger := getLogger(c)

	var params travel.RestaurantSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.Error("Invalid restaurant search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	restaurants, err := hb.Restaurants.SearchRestaurants(c.Request.Context(), params)
	if err != nil {
		logger.Error("Restaurant search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// MakeReservationHandler reserves a table and records the booking.
func (hb *HandlerBundle) MakeReservationHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var details travel.ReservationDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		logger.Error("Invalid reservation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reservationID, err := hb.Restaurants.MakeReservation(c.Request.Context(), details)
	if err != nil {
		logger.Error("Reservation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	booking := hb.recordBooking(c, userID.(string), models.BookingRestaurant, models.BookingDetails{
		Restaurant: &models.RestaurantBookingDetails{
			RestaurantID: details.RestaurantID,
			Date:         details.Date,
			Time:         details.Time,
			PartySize:    details.PartySize,
			Reference:    reservationID,
		},
	})
	c.JSON(http.StatusCreated, gin.H{"reservationId": reservationID, "booking": booking})
}

// SearchAttractionsHandler proxies an attraction search.
func (hb *HandlerBundle) SearchAttractionsHandler(c *gin.Context) {
	logger := getLogger(c)

	var params travel.AttractionSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.Error("Invalid attraction search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	attractions, err := hb.Attractions.SearchAttractions(c.Request.Context(), params)
	if err != nil {
		logger.Error("Attraction search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attractions": attractions})
}

// TopAttractionsHandler lists the highest rated attractions for a location.
func (hb *HandlerBundle) TopAttractionsHandler(c *gin.Context) {
	logger := getLogger(c)

	attractions, err := hb.Attractions.GetTopAttractions(c.Request.Context(), c.Query("location"), 0)
	if err != nil {
		logger.Error("Top attraction lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attractions": attractions})
}

// ListBookingsHandler returns the user's recorded bookings.
func (hb *HandlerBundle) ListBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := hb.BookingRepo.ListByUser(c.Request.Context(), userID.(string))
	if err != nil {
		logger.Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBookingHandler cancels a recorded booking with its provider and
// marks the record cancelled. Flight and hotel bookings have no online
// cancellation; those go through support.
func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	booking, err := hb.BookingRepo.GetByID(c.Request.Context(), userID.(string), c.Param("id"))
	if err != nil {
		logger.Error("Booking lookup failed", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if booking.Status == models.BookingCancelled {
		c.JSON(http.StatusOK, gin.H{"cancelled": true, "booking": booking})
		return
	}

	var cancelled bool
	switch booking.Type {
	case models.BookingTransportation:
		cancelled, err = hb.Transportation.CancelBooking(c.Request.Context(), booking.Details.Transportation.Reference)
	case models.BookingRestaurant:
		cancelled, err = hb.Restaurants.CancelReservation(c.Request.Context(), booking.Details.Restaurant.Reference)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "This booking cannot be cancelled online"})
		return
	}
	if err != nil {
		logger.Error("Provider cancellation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if !cancelled {
		c.JSON(http.StatusConflict, gin.H{"error": "The provider declined the cancellation"})
		return
	}

	if err := hb.BookingRepo.UpdateStatus(c.Request.Context(), userID.(string), booking.ID, models.BookingCancelled); err != nil {
		logger.Error("Failed to update booking status", zap.String("bookingID", booking.ID), zap.Error(err))
	}
	booking.Status = models.BookingCancelled
	c.JSON(http.StatusOK, gin.H{"cancelled": true, "booking": booking})
}

// recordBooking persists a confirmed provider booking. A persistence
// failure is logged but does not fail the turn, since the upstream
// booking already succeeded.
func (hb *HandlerBundle) recordBooking(c *gin.Context, userID string, bookingType models.BookingType, details models.BookingDetails) *models.Booking {
	logger := getLogger(c)

	now := time.Now()
	booking := &models.Booking{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      bookingType,
		Status:    models.BookingConfirmed,
		Details:   details,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := hb.BookingRepo.Create(c.Request.Context(), booking); err != nil {
		logger.Error("Failed to record booking", zap.String("userID", userID), zap.Error(err))
		return nil
	}
	return booking
}
