package travel

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// TransportationSearchParams are the inputs to a ground-transport search.
type TransportationSearchParams struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	Passengers int    `json:"passengers"`
	Type       string `json:"type,omitempty"` // "private", "shared" or "public"
}

// TransportationOption is one bookable transfer.
type TransportationOption struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Provider      string   `json:"provider"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Duration      string   `json:"duration"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	Capacity      int      `json:"capacity"`
	Amenities     []string `json:"amenities"`
}

// TransportationBookingRequest is the payload for booking a transfer.
type TransportationBookingRequest struct {
	TransportationID string           `json:"transportationId"`
	Passengers       int              `json:"passengers"`
	ContactInfo      PassengerDetails `json:"contactInfo"`
	SpecialRequests  string           `json:"specialRequests,omitempty"`
}

// TransportationBookingStatus is the provider's view of a booking.
type TransportationBookingStatus struct {
	BookingReference string `json:"bookingReference"`
	Status           string `json:"status"`
	PickupTime       string `json:"pickupTime,omitempty"`
}

// TransportationClient calls the ground-transportation API.
type TransportationClient struct {
	api apiClient
}

func NewTransportationClient(apiKey, baseURL string) *TransportationClient {
	return &TransportationClient{api: newAPIClient(baseURL, apiKey)}
}

// SearchTransportation returns the transfer options matching params, unmodified.
func (c *TransportationClient) SearchTransportation(ctx context.Context, params TransportationSearchParams) ([]TransportationOption, error) {
	query := url.Values{}
	query.Set("from", params.From)
	query.Set("to", params.To)
	query.Set("date", params.Date)
	query.Set("passengers", strconv.Itoa(params.Passengers))
	if params.Type != "" {
		query.Set("type", params.Type)
	}

	var resp struct {
		Options []TransportationOption `json:"options"`
	}
	if err := c.api.getJSON(ctx, "/transportation/search", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to search transportation options: %w", err)
	}
	return resp.Options, nil
}

// GetTransportationDetails fetches one transfer option by ID.
func (c *TransportationClient) GetTransportationDetails(ctx context.Context, transportationID string) (*TransportationOption, error) {
	var option TransportationOption
	if err := c.api.getJSON(ctx, "/transportation/"+transportationID, nil, &option); err != nil {
		return nil, fmt.Errorf("failed to fetch transportation details: %w", err)
	}
	return &option, nil
}

// BookTransportation books a transfer and returns the booking reference.
func (c *TransportationClient) BookTransportation(ctx context.Context, req TransportationBookingRequest) (string, error) {
	var resp struct {
		BookingReference string `json:"bookingReference"`
	}
	if err := c.api.postJSON(ctx, "/transportation/bookings", req, &resp); err != nil {
		return "", fmt.Errorf("failed to book transportation: %w", err)
	}
	return resp.BookingReference, nil
}

// GetBookingStatus fetches the provider's record for a booking reference.
func (c *TransportationClient) GetBookingStatus(ctx context.Context, bookingReference string) (*TransportationBookingStatus, error) {
	var status TransportationBookingStatus
	if err := c.api.getJSON(ctx, "/transportation/bookings/"+bookingReference, nil, &status); err != nil {
		return nil, fmt.Errorf("failed to fetch booking status: %w", err)
	}
	return &status, nil
}

// CancelBooking cancels a transfer booking.
func (c *TransportationClient) CancelBooking(ctx context.Context, bookingReference string) (bool, error) {
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.api.deleteJSON(ctx, "/transportation/bookings/"+bookingReference, &resp); err != nil {
		return false, fmt.Errorf("failed to cancel booking: %w", err)
	}
	return resp.Success, nil
}
