package travel

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// FlightSearchParams are the inputs to a flight search.
type FlightSearchParams struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Passengers    int    `json:"passengers"`
	CabinClass    string `json:"cabinClass"`
}

// FlightOption is one bookable flight returned by the airline API.
type FlightOption struct {
	FlightNumber   string  `json:"flightNumber"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Duration       string  `json:"duration"`
	Price          float64 `json:"price"`
	CabinClass     string  `json:"cabinClass"`
	AvailableSeats int     `json:"availableSeats"`
}

// FlightAddOn is a purchasable extra for a flight.
type FlightAddOn struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// PassengerDetails identifies the lead passenger on a flight booking.
type PassengerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// FlightBookingRecord is the airline's view of a completed booking.
type FlightBookingRecord struct {
	BookingReference string   `json:"bookingReference"`
	FlightNumber     string   `json:"flightNumber"`
	Status           string   `json:"status"`
	AddOns           []string `json:"addOns,omitempty"`
}

// AirlineClient calls the airline booking API.
type AirlineClient struct {
	api apiClient
}

func NewAirlineClient(apiKey, baseURL string) *AirlineClient {
	return &AirlineClient{api: newAPIClient(baseURL, apiKey)}
}

// SearchFlights returns the flights matching params, unmodified.
func (c *AirlineClient) SearchFlights(ctx context.Context, params FlightSearchParams) ([]FlightOption, error) {
	query := url.Values{}
	query.Set("origin", params.Origin)
	query.Set("destination", params.Destination)
	query.Set("departureDate", params.DepartureDate)
	if params.ReturnDate != "" {
		query.Set("returnDate", params.ReturnDate)
	}
	query.Set("passengers", strconv.Itoa(params.Passengers))
	query.Set("cabinClass", params.CabinClass)

	var resp struct {
		Flights []FlightOption `json:"flights"`
	}
	if err := c.api.getJSON(ctx, "/flights/search", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to search flights: %w", err)
	}
	return resp.Flights, nil
}

// GetAvailableAddOns lists the purchasable extras for a flight.
func (c *AirlineClient) GetAvailableAddOns(ctx context.Context, flightNumber string) ([]FlightAddOn, error) {
	var resp struct {
		AddOns []FlightAddOn `json:"addOns"`
	}
	if err := c.api.getJSON(ctx, "/flights/"+flightNumber+"/add-ons", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch add-ons: %w", err)
	}
	return resp.AddOns, nil
}

// BookFlight books a flight with the chosen add-ons and returns the booking reference.
func (c *AirlineClient) BookFlight(ctx context.Context, flightNumber string, addOns []string, passenger PassengerDetails) (string, error) {
	body := map[string]interface{}{
		"flightNumber":     flightNumber,
		"addOns":           addOns,
		"passengerDetails": passenger,
	}
	var resp struct {
		BookingReference string `json:"bookingReference"`
	}
	if err := c.api.postJSON(ctx, "/bookings", body, &resp); err != nil {
		return "", fmt.Errorf("failed to book flight: %w", err)
	}
	return resp.BookingReference, nil
}

// GetBookingDetails fetches the airline's record for a booking reference.
func (c *AirlineClient) GetBookingDetails(ctx context.Context, bookingReference string) (*FlightBookingRecord, error) {
	var record FlightBookingRecord
	if err := c.api.getJSON(ctx, "/bookings/"+bookingReference, nil, &record); err != nil {
		return nil, fmt.Errorf("failed to fetch booking details: %w", err)
	}
	return &record, nil
}
