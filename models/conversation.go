package models

import "time"

// Step identifies the current position in the scripted booking dialogue.
type Step string

const (
	StepInitial         Step = "initial"
	StepTripPurpose     Step = "trip_purpose"
	StepFlightSelection Step = "flight_selection"
	StepAddOns          Step = "add_ons"
	StepHotelSelection  Step = "hotel_selection"
	StepTransportation  Step = "transportation"
	StepRestaurant      Step = "restaurant"
	StepAttractions     Step = "attractions"
)

// NormalizeStep maps any unknown step value back to the initial step.
func NormalizeStep(s Step) Step {
	switch s {
	case StepInitial, StepTripPurpose, StepFlightSelection, StepAddOns,
		StepHotelSelection, StepTransportation, StepRestaurant, StepAttractions:
		return s
	default:
		return StepInitial
	}
}

// FlightSlot captures the flight choice collected during the dialogue.
type FlightSlot struct {
	Origin        string   `bson:"origin" json:"origin"`
	Destination   string   `bson:"destination" json:"destination"`
	DepartureDate string   `bson:"departure_date" json:"departureDate"`
	ReturnDate    string   `bson:"return_date,omitempty" json:"returnDate,omitempty"`
	Passengers    int      `bson:"passengers" json:"passengers"`
	CabinClass    string   `bson:"cabin_class" json:"cabinClass"`
	AddOns        []string `bson:"add_ons,omitempty" json:"addOns,omitempty"`
}

// HotelSlot captures the hotel choice collected during the dialogue.
type HotelSlot struct {
	Location    string   `bson:"location" json:"location"`
	CheckIn     string   `bson:"check_in" json:"checkIn"`
	CheckOut    string   `bson:"check_out" json:"checkOut"`
	Guests      int      `bson:"guests" json:"guests"`
	Preferences []string `bson:"preferences,omitempty" json:"preferences,omitempty"`
}

// TransportSlot captures the ground-transportation choice.
type TransportSlot struct {
	Type       string `bson:"type" json:"type"`
	From       string `bson:"from" json:"from"`
	To         string `bson:"to" json:"to"`
	Date       string `bson:"date" json:"date"`
	Passengers int    `bson:"passengers" json:"passengers"`
}

// RestaurantSlot captures the restaurant reservation choice.
type RestaurantSlot struct {
	Location  string `bson:"location" json:"location"`
	Cuisine   string `bson:"cuisine" json:"cuisine"`
	Date      string `bson:"date" json:"date"`
	Time      string `bson:"time" json:"time"`
	PartySize int    `bson:"party_size" json:"partySize"`
}

// TripContext accumulates the structured trip information gathered so far.
// Nil slots have not been filled yet.
type TripContext struct {
	TripPurpose    string          `bson:"trip_purpose,omitempty" json:"tripPurpose,omitempty"`
	Flight         *FlightSlot     `bson:"flight,omitempty" json:"flightDetails,omitempty"`
	Hotel          *HotelSlot      `bson:"hotel,omitempty" json:"hotelDetails,omitempty"`
	Transportation *TransportSlot  `bson:"transportation,omitempty" json:"transportationDetails,omitempty"`
	Restaurant     *RestaurantSlot `bson:"restaurant,omitempty" json:"restaurantDetails,omitempty"`
}

// ConversationState is one user's dialogue record, keyed by user ID.
// The document id mirrors UserID so state documents are addressable by
// the same (id, partition key) pair as every other collection.
type ConversationState struct {
	ID           string      `bson:"id" json:"-"`
	UserID       string      `bson:"user_id" json:"userId"`
	CurrentStep  Step        `bson:"current_step" json:"currentStep"`
	Context      TripContext `bson:"context" json:"context"`
	LastMessage  string      `bson:"last_message" json:"lastMessage"`
	LastResponse string      `bson:"last_response" json:"lastResponse"`
	CreatedAt    time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time   `bson:"updated_at" json:"updatedAt"`
}

// StateUpdate is a partial conversation-state update. Nil fields are left
// untouched; non-nil slot updates replace the corresponding slot only.
type StateUpdate struct {
	CurrentStep    *Step           `json:"currentStep,omitempty"`
	TripPurpose    *string         `json:"tripPurpose,omitempty"`
	Flight         *FlightSlot     `json:"flightDetails,omitempty"`
	Hotel          *HotelSlot      `json:"hotelDetails,omitempty"`
	Transportation *TransportSlot  `json:"transportationDetails,omitempty"`
	Restaurant     *RestaurantSlot `json:"restaurantDetails,omitempty"`
	LastMessage    *string         `json:"lastMessage,omitempty"`
	LastResponse   *string         `json:"lastResponse,omitempty"`
}
