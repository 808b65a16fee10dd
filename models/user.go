package models

import "time"

// PaymentMethod is a stored payment instrument on a user profile.
type PaymentMethod struct {
	ID             string `bson:"id" json:"id"`
	Type           string `bson:"type" json:"type"` // "credit_card" or "paypal"
	LastFourDigits string `bson:"last_four_digits,omitempty" json:"lastFourDigits,omitempty"`
	ExpiryDate     string `bson:"expiry_date,omitempty" json:"expiryDate,omitempty"`
	IsDefault      bool   `bson:"is_default" json:"isDefault"`
}

// UserPreferences holds per-user settings applied across bookings.
type UserPreferences struct {
	Language            string          `bson:"language" json:"language"`
	Currency            string          `bson:"currency" json:"currency"`
	Notifications       bool            `bson:"notifications" json:"notifications"`
	SavedPaymentMethods []PaymentMethod `bson:"saved_payment_methods" json:"savedPaymentMethods"`
}

// User represents a registered traveller.
type User struct {
	ID           string          `bson:"id" json:"id"`
	Email        string          `bson:"email" json:"email"`
	Name         string          `bson:"name" json:"name"`
	PasswordHash string          `bson:"password_hash" json:"-"`
	TokenHash    string          `bson:"token_hash,omitempty" json:"-"`
	Preferences  UserPreferences `bson:"preferences" json:"preferences"`
	CreatedAt    time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updated_at" json:"updatedAt"`
}

// UserRegistrationData is the payload accepted by the register endpoint.
type UserRegistrationData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// UserUpdateRequest carries profile fields a user may change.
type UserUpdateRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
