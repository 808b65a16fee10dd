package models

import "time"

// BookingType discriminates the domain a booking belongs to.
type BookingType string

const (
	BookingFlight         BookingType = "flight"
	BookingHotel          BookingType = "hotel"
	BookingTransportation BookingType = "transportation"
	BookingRestaurant     BookingType = "restaurant"
)

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// FlightBookingDetails is the flight variant of the booking payload.
type FlightBookingDetails struct {
	FlightNumber string   `bson:"flight_number" json:"flightNumber"`
	AddOns       []string `bson:"add_ons,omitempty" json:"addOns,omitempty"`
	Reference    string   `bson:"reference" json:"reference"`
}

// HotelBookingDetails is the hotel variant of the booking payload.
type HotelBookingDetails struct {
	HotelID   string `bson:"hotel_id" json:"hotelId"`
	RoomID    string `bson:"room_id" json:"roomId"`
	CheckIn   string `bson:"check_in" json:"checkIn"`
	CheckOut  string `bson:"check_out" json:"checkOut"`
	Reference string `bson:"reference" json:"reference"`
}

// TransportationBookingDetails is the ground-transport variant.
type TransportationBookingDetails struct {
	TransportationID string `bson:"transportation_id" json:"transportationId"`
	Passengers       int    `bson:"passengers" json:"passengers"`
	Reference        string `bson:"reference" json:"reference"`
}

// RestaurantBookingDetails is the restaurant-reservation variant.
type RestaurantBookingDetails struct {
	RestaurantID string `bson:"restaurant_id" json:"restaurantId"`
	Date         string `bson:"date" json:"date"`
	Time         string `bson:"time" json:"time"`
	PartySize    int    `bson:"party_size" json:"partySize"`
	Reference    string `bson:"reference" json:"reference"`
}

// BookingDetails is a tagged union; exactly the variant matching the booking
// type is populated.
type BookingDetails struct {
	Flight         *FlightBookingDetails         `bson:"flight,omitempty" json:"flight,omitempty"`
	Hotel          *HotelBookingDetails          `bson:"hotel,omitempty" json:"hotel,omitempty"`
	Transportation *TransportationBookingDetails `bson:"transportation,omitempty" json:"transportation,omitempty"`
	Restaurant     *RestaurantBookingDetails     `bson:"restaurant,omitempty" json:"restaurant,omitempty"`
}

// Booking is a persisted record of a provider booking made for a user.
type Booking struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"user_id" json:"userId"`
	Type      BookingType    `bson:"type" json:"type"`
	Status    BookingStatus  `bson:"status" json:"status"`
	Details   BookingDetails `bson:"details" json:"details"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updatedAt"`
}
