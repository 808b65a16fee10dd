// File: services/user/interface.go
package user

import (
	"context"

	userRepo "tripmate/database/repository/user"
	"tripmate/models"
)

// AuthResponse carries the user profile and the issued session token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService covers registration, login, and profile mutation.
type UserService interface {
	Register(ctx context.Context, data models.UserRegistrationData) (*models.User, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, updates models.UserUpdateRequest) (*models.User, error)
	UpdatePreferences(ctx context.Context, userID string, prefs PreferencesUpdate) (*models.UserPreferences, error)
	AddPaymentMethod(ctx context.Context, userID string, method models.PaymentMethod) (*models.PaymentMethod, error)
	RemovePaymentMethod(ctx context.Context, userID, paymentMethodID string) error
}

// PreferencesUpdate is a partial preferences update; nil fields are untouched.
type PreferencesUpdate struct {
	Language      *string `json:"language,omitempty"`
	Currency      *string `json:"currency,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
