package travel

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// RestaurantSearchParams are the inputs to a restaurant search.
type RestaurantSearchParams struct {
	Location   string  `json:"location"`
	Cuisine    string  `json:"cuisine,omitempty"`
	PriceRange string  `json:"priceRange,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Radius     int     `json:"radius,omitempty"`
}

// MenuItem is one dish on a restaurant menu.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	DietaryInfo []string `json:"dietaryInfo"`
}

// RestaurantReview is one diner review.
type RestaurantReview struct {
	ID      string  `json:"id"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Author  string  `json:"author"`
	Date    string  `json:"date"`
}

// Restaurant is one venue returned by the restaurant API.
type Restaurant struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Cuisine      string             `json:"cuisine"`
	Description  string             `json:"description"`
	Address      string             `json:"address"`
	Rating       float64            `json:"rating"`
	PriceRange   string             `json:"priceRange"`
	OpeningHours map[string]string  `json:"openingHours"`
	Menu         []MenuItem         `json:"menu"`
	Images       []string           `json:"images"`
	Reviews      []RestaurantReview `json:"reviews"`
}

// ReservationDetails is the payload for making a reservation.
type ReservationDetails struct {
	RestaurantID    string           `json:"restaurantId"`
	Date            string           `json:"date"`
	Time            string           `json:"time"`
	PartySize       int              `json:"partySize"`
	ContactInfo     PassengerDetails `json:"contactInfo"`
	SpecialRequests string           `json:"specialRequests,omitempty"`
}

// ReservationRecord is the provider's view of a reservation.
type ReservationRecord struct {
	ReservationID string `json:"reservationId"`
	RestaurantID  string `json:"restaurantId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PartySize     int    `json:"partySize"`
	Status        string `json:"status"`
}

// RestaurantClient calls the restaurant reservation API.
type RestaurantClient struct {
	api apiClient
}

func NewRestaurantClient(apiKey, baseURL string) *RestaurantClient {
	return &RestaurantClient{api: newAPIClient(baseURL, apiKey)}
}

// SearchRestaurants returns the restaurants matching params, unmodified.
func (c *RestaurantClient) SearchRestaurants(ctx context.Context, params RestaurantSearchParams) ([]Restaurant, error) {
	query := url.Values{}
	query.Set("location", params.Location)
	if params.Cuisine != "" {
		query.Set("cuisine", params.Cuisine)
	}
	if params.PriceRange != "" {
		query.Set("priceRange", params.PriceRange)
	}
	if params.Rating > 0 {
		query.Set("rating", strconv.FormatFloat(params.Rating, 'f', -1, 64))
	}
	if params.Radius > 0 {
		query.Set("radius", strconv.Itoa(params.Radius))
	}

	var resp struct {
		Restaurants []Restaurant `json:"restaurants"`
	}
	if err := c.api.getJSON(ctx, "/restaurants/search", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to search restaurants: %w", err)
	}
	return resp.Restaurants, nil
}

// GetRestaurantDetails fetches one restaurant by ID.
func (c *RestaurantClient) GetRestaurantDetails(ctx context.Context, restaurantID string) (*Restaurant, error) {
	var restaurant Restaurant
	if err := c.api.getJSON(ctx, "/restaurants/"+restaurantID, nil, &restaurant); err != nil {
		return nil, fmt.Errorf("failed to fetch restaurant details: %w", err)
	}
	return &restaurant, nil
}

// CheckAvailability lists open reservation times for a date and party size.
func (c *RestaurantClient) CheckAvailability(ctx context.Context, restaurantID, date string, partySize int) ([]string, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("partySize", strconv.Itoa(partySize))

	var resp struct {
		AvailableTimes []string `json:"availableTimes"`
	}
	if err := c.api.getJSON(ctx, "/restaurants/"+restaurantID+"/availability", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	return resp.AvailableTimes, nil
}

// MakeReservation books a table and returns the reservation ID.
func (c *RestaurantClient) MakeReservation(ctx context.Context, details ReservationDetails) (string, error) {
	var resp struct {
		ReservationID string `json:"reservationId"`
	}
	if err := c.api.postJSON(ctx, "/reservations", details, &resp); err != nil {
		return "", fmt.Errorf("failed to make reservation: %w", err)
	}
	return resp.ReservationID, nil
}

// GetReservationDetails fetches the record for a reservation ID.
func (c *RestaurantClient) GetReservationDetails(ctx context.Context, reservationID string) (*ReservationRecord, error) {
	var record ReservationRecord
	if err := c.api.getJSON(ctx, "/reservations/"+reservationID, nil, &record); err != nil {
		return nil, fmt.Errorf("failed to fetch reservation details: %w", err)
	}
	return &record, nil
}

// CancelReservation cancels a reservation.
func (c *RestaurantClient) CancelReservation(ctx context.Context, reservationID string) (bool, error) {
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.api.deleteJSON(ctx, "/reservations/"+reservationID, &resp); err != nil {
		return false, fmt.Errorf("failed to cancel reservation: %w", err)
	}
	return resp.Success, nil
}
