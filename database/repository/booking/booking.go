package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"tripmate/database/repository"
	"tripmate/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, userID, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, userID, id string, status models.BookingStatus) error
}

// DocumentBookingRepo implements BookingRepository over the generic document
// store. Booking documents are partitioned by user ID.
type DocumentBookingRepo struct {
	store repository.DocumentStore
}

func NewDocumentBookingRepo(store repository.DocumentStore) *DocumentBookingRepo {
	return &DocumentBookingRepo{store: store}
}

func (r *DocumentBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if err := r.store.CreateItem(ctx, repository.BookingsCollection, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *DocumentBookingRepo) GetByID(ctx context.Context, userID, id string) (*models.Booking, error) {
	var booking models.Booking
	found, err := r.store.GetItem(ctx, repository.BookingsCollection, id, userID, &booking)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if !found {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	return &booking, nil
}

func (r *DocumentBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.store.QueryItems(ctx, repository.BookingsCollection, bson.M{"user_id": userID}, &bookings); err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

func (r *DocumentBookingRepo) UpdateStatus(ctx context.Context, userID, id string, status models.BookingStatus) error {
	updates := bson.M{"status": status, "updated_at": time.Now()}
	if err := r.store.UpdateItem(ctx, repository.BookingsCollection, id, userID, updates); err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return nil
}
