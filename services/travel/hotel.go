package travel

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// HotelSearchParams are the inputs to a hotel search.
type HotelSearchParams struct {
	Location string  `json:"location"`
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
	Guests   int     `json:"guests"`
	RoomType string  `json:"roomType,omitempty"`
	MinPrice float64 `json:"minPrice,omitempty"`
	MaxPrice float64 `json:"maxPrice,omitempty"`
}

// Hotel is one property returned by the hotel API.
type Hotel struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Description         string             `json:"description"`
	Address             string             `json:"address"`
	Rating              float64            `json:"rating"`
	PricePerNight       float64            `json:"pricePerNight"`
	Amenities           []string           `json:"amenities"`
	Images              []string           `json:"images"`
	DistanceFromAirport float64            `json:"distanceFromAirport"`
	DistanceFromSights  map[string]float64 `json:"distanceFromAttractions"`
}

// Room is one bookable room type at a hotel.
type Room struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
}

// RoomBookingDetails is the payload for booking a room.
type RoomBookingDetails struct {
	CheckIn   string           `json:"checkIn"`
	CheckOut  string           `json:"checkOut"`
	Guests    int              `json:"guests"`
	GuestInfo PassengerDetails `json:"guestInfo"`
}

// NearbyRestaurant is a restaurant summary returned by the hotel API.
type NearbyRestaurant struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Cuisine  string  `json:"cuisine"`
	Rating   float64 `json:"rating"`
	Distance float64 `json:"distance"`
}

// HotelClient calls the hotel booking API.
type HotelClient struct {
	api apiClient
}

func NewHotelClient(apiKey, baseURL string) *HotelClient {
	return &HotelClient{api: newAPIClient(baseURL, apiKey)}
}

// SearchHotels returns the hotels matching params, unmodified.
func (c *HotelClient) SearchHotels(ctx context.Context, params HotelSearchParams) ([]Hotel, error) {
	query := url.Values{}
	query.Set("location", params.Location)
	query.Set("checkIn", params.CheckIn)
	query.Set("checkOut", params.CheckOut)
	query.Set("guests", strconv.Itoa(params.Guests))
	if params.RoomType != "" {
		query.Set("roomType", params.RoomType)
	}
	if params.MaxPrice > 0 {
		query.Set("minPrice", strconv.FormatFloat(params.MinPrice, 'f', -1, 64))
		query.Set("maxPrice", strconv.FormatFloat(params.MaxPrice, 'f', -1, 64))
	}

	var resp struct {
		Hotels []Hotel `json:"hotels"`
	}
	if err := c.api.getJSON(ctx, "/hotels/search", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	return resp.Hotels, nil
}

// GetHotelDetails fetches one hotel by ID.
func (c *HotelClient) GetHotelDetails(ctx context.Context, hotelID string) (*Hotel, error) {
	var hotel Hotel
	if err := c.api.getJSON(ctx, "/hotels/"+hotelID, nil, &hotel); err != nil {
		return nil, fmt.Errorf("failed to fetch hotel details: %w", err)
	}
	return &hotel, nil
}

// GetAvailableRooms lists bookable rooms for a stay window.
func (c *HotelClient) GetAvailableRooms(ctx context.Context, hotelID, checkIn, checkOut string) ([]Room, error) {
	query := url.Values{}
	query.Set("checkIn", checkIn)
	query.Set("checkOut", checkOut)

	var resp struct {
		Rooms []Room `json:"rooms"`
	}
	if err := c.api.getJSON(ctx, "/hotels/"+hotelID+"/rooms", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch available rooms: %w", err)
	}
	return resp.Rooms, nil
}

// BookRoom books a room and returns the booking reference.
func (c *HotelClient) BookRoom(ctx context.Context, hotelID, roomID string, details RoomBookingDetails) (string, error) {
	body := map[string]interface{}{
		"hotelId":   hotelID,
		"roomId":    roomID,
		"checkIn":   details.CheckIn,
		"checkOut":  details.CheckOut,
		"guests":    details.Guests,
		"guestInfo": details.GuestInfo,
	}
	var resp struct {
		BookingReference string `json:"bookingReference"`
	}
	if err := c.api.postJSON(ctx, "/bookings", body, &resp); err != nil {
		return "", fmt.Errorf("failed to book room: %w", err)
	}
	return resp.BookingReference, nil
}

// GetNearbyRestaurants lists restaurants within radius kilometers of a hotel.
func (c *HotelClient) GetNearbyRestaurants(ctx context.Context, hotelID string, radius int) ([]NearbyRestaurant, error) {
	query := url.Values{}
	query.Set("radius", strconv.Itoa(radius))

	var resp struct {
		Restaurants []NearbyRestaurant `json:"restaurants"`
	}
	if err := c.api.getJSON(ctx, "/hotels/"+hotelID+"/nearby-restaurants", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch nearby restaurants: %w", err)
	}
	return resp.Restaurants, nil
}
