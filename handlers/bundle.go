// File: handlers/bundle.go
package handlers

import (
	bookingRepoPkg "tripmate/database/repository/booking"
	userRepoPkg "tripmate/database/repository/user"
	"tripmate/services/conversation"
	"tripmate/services/knowledge"
	"tripmate/services/travel"
	"tripmate/services/user"
)

// HandlerBundle groups all endpoint handlers and their dependencies.
type HandlerBundle struct {
	UserRepo    userRepoPkg.UserRepository
	BookingRepo bookingRepoPkg.BookingRepository

	ConversationSvc conversation.ConversationService
	UserSvc         user.UserService
	KnowledgeSvc    knowledge.KnowledgeService

	Airline        *travel.AirlineClient
	Hotels         *travel.HotelClient
	Transportation *travel.TransportationClient
	Restaurants    *travel.RestaurantClient
	Attractions    *travel.AttractionClient
}
