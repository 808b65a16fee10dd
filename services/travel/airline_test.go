package travel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchFlights_PassesResponseThroughUnmodified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/flights/search", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.Equal(t, "LGW", r.URL.Query().Get("origin"))
		require.Equal(t, "JFK", r.URL.Query().Get("destination"))
		require.Equal(t, "2024-06-01", r.URL.Query().Get("departureDate"))
		require.Equal(t, "1", r.URL.Query().Get("passengers"))
		require.Equal(t, "economy", r.URL.Query().Get("cabinClass"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"flights":[{"flightNumber":"DY7002","departureTime":"2024-06-01T09:00:00Z","arrivalTime":"2024-06-01T12:05:00Z","duration":"8h5m","price":199,"cabinClass":"economy","availableSeats":42}]}`))
	}))
	defer srv.Close()

	client := NewAirlineClient("test-key", srv.URL)
	flights, err := client.SearchFlights(context.Background(), FlightSearchParams{
		Origin:        "LGW",
		Destination:   "JFK",
		DepartureDate: "2024-06-01",
		Passengers:    1,
		CabinClass:    "economy",
	})
	require.NoError(t, err)
	require.Len(t, flights, 1)
	require.Equal(t, "DY7002", flights[0].FlightNumber)
	require.Equal(t, 199.0, flights[0].Price)
	require.Equal(t, 42, flights[0].AvailableSeats)
}

func TestSearchFlights_ServerErrorIsDomainLabeled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewAirlineClient("test-key", srv.URL)
	_, err := client.SearchFlights(context.Background(), FlightSearchParams{Origin: "LGW", Destination: "JFK"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to search flights")
}

func TestSearchFlights_MalformedBodyIsDomainLabeled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not-json`))
	}))
	defer srv.Close()

	client := NewAirlineClient("test-key", srv.URL)
	_, err := client.SearchFlights(context.Background(), FlightSearchParams{Origin: "LGW", Destination: "JFK"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to search flights")
}

func TestBookFlight_ReturnsBookingReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/bookings", r.URL.Path)
		w.Write([]byte(`{"bookingReference":"NBK123"}`))
	}))
	defer srv.Close()

	client := NewAirlineClient("test-key", srv.URL)
	ref, err := client.BookFlight(context.Background(), "DY7002", []string{"checked-bag"}, PassengerDetails{Name: "Ada"})
	require.NoError(t, err)
	require.Equal(t, "NBK123", ref)
}

func TestGetAvailableAddOns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/flights/DY7002/add-ons", r.URL.Path)
		w.Write([]byte(`{"addOns":[{"id":"bag","name":"Checked Bag","price":45}]}`))
	}))
	defer srv.Close()

	client := NewAirlineClient("test-key", srv.URL)
	addOns, err := client.GetAvailableAddOns(context.Background(), "DY7002")
	require.NoError(t, err)
	require.Len(t, addOns, 1)
	require.Equal(t, "Checked Bag", addOns[0].Name)
}
