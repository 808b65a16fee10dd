// File: services/conversation/steps.go
package conversation

import "tripmate/models"

// stepResponses maps each dialogue step to its canned guidance text.
var stepResponses = map[models.Step]string{
	models.StepInitial: "Welcome to Norse Atlantic Airways! I'm your travel assistant. " +
		"Before we begin, could you please tell me if this trip is for:\n" +
		"1. Business\n2. Leisure\n3. A mix of both",
	models.StepTripPurpose: "Great! Let's find you a flight from London Gatwick to JFK. " +
		"Would you like to:\n1. See the cheapest option\n2. See all available options\n3. Filter by specific dates",
	models.StepFlightSelection: "I've found some great options for your trip. Here are the available add-ons:\n" +
		"- Seat Selection\n- WiFi\n- Meals\n- Checked Bag\n- Priority Boarding\n\n" +
		"Please select the add-ons you'd like (you can select multiple):",
	models.StepAddOns: "Based on your selection of the cheapest option and checked bag, " +
		"I recommend our Economy Standard fare. Would you like to proceed with this selection?",
	models.StepHotelSelection: "I see you're interested in Greenwich Village. Here are three great hotel options:\n" +
		"1. The Greenwich Hotel - Luxury boutique hotel\n" +
		"2. Washington Square Hotel - Mid-range with great location\n" +
		"3. The Marlton Hotel - Budget-friendly option\n\nWhich would you prefer?",
	models.StepTransportation: "For transportation from JFK to your hotel, we offer:\n" +
		"1. Private car service\n2. Shared shuttle\n3. Public transportation\n4. Taxi/Uber\n\nWhat would you prefer?",
	models.StepRestaurant: "Here are some great restaurants within 10 minutes of your hotel:\n" +
		"1. Minetta Tavern - Classic American\n2. L'Artusi - Italian\n3. Blue Hill - Farm-to-table\n\n" +
		"Would you like to make a reservation at any of these?",
	models.StepAttractions: "Here are some top attractions in New York:\n" +
		"1. Central Park\n2. Empire State Building\n3. Statue of Liberty\n4. Times Square\n5. Metropolitan Museum of Art\n\n" +
		"Would you like more information about any of these attractions?",
}

// stepTransitions is the scripted flow's advance table. Attractions is
// terminal and maps to itself.
var stepTransitions = map[models.Step]models.Step{
	models.StepInitial:         models.StepTripPurpose,
	models.StepTripPurpose:     models.StepFlightSelection,
	models.StepFlightSelection: models.StepAddOns,
	models.StepAddOns:          models.StepHotelSelection,
	models.StepHotelSelection:  models.StepTransportation,
	models.StepTransportation:  models.StepRestaurant,
	models.StepRestaurant:      models.StepAttractions,
	models.StepAttractions:     models.StepAttractions,
}

// ResponseForStep returns the canned guidance text for a step. Unknown
// steps fall back to the initial greeting.
func ResponseForStep(step models.Step) string {
	if resp, ok := stepResponses[step]; ok {
		return resp
	}
	return stepResponses[models.StepInitial]
}

// NextStep returns the step that follows the given one in the scripted
// flow. Unknown steps restart at initial's successor.
func NextStep(step models.Step) models.Step {
	if next, ok := stepTransitions[step]; ok {
		return next
	}
	return stepTransitions[models.StepInitial]
}
