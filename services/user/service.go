// File: services/user/service.go
package user

import (
	"context"
	"net/http"
	"time"

	"tripmate/models"
	"tripmate/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

func defaultPreferences() models.UserPreferences {
	return models.UserPreferences{
		Language:            "en",
		Currency:            "USD",
		Notifications:       true,
		SavedPaymentMethods: []models.PaymentMethod{},
	}
}

// Register creates a new user with hashed credentials and default
// preferences. Email addresses are unique.
func (s *DefaultUserService) Register(ctx context.Context, data models.UserRegistrationData) (*models.User, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(ctx, data.Email)
	if err != nil {
		logger.Error("Failed to check for existing user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewAppError("User already exists", http.StatusBadRequest, "USER_EXISTS")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: string(hashed),
		Preferences:  defaultPreferences(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		logger.Error("Failed to register user", zap.Error(err))
		return nil, err
	}

	logger.Info("Registered user", zap.String("userID", user.ID))
	return user, nil
}

// Login verifies the credentials, issues a signed token, and records
// its hash on the user record so inbound requests can be matched
// against it.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		logger.Error("Failed to look up user for login", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, utils.NewAppError("Invalid credentials", http.StatusUnauthorized, "INVALID_CREDENTIALS")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewAppError("Invalid credentials", http.StatusUnauthorized, "INVALID_CREDENTIALS")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenDuration)
	if err != nil {
		logger.Error("Failed to generate auth token", zap.Error(err))
		return nil, err
	}

	user.TokenHash = utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(ctx, user.ID, bson.M{"token_hash": user.TokenHash}); err != nil {
		logger.Error("Failed to store token hash", zap.Error(err))
		return nil, err
	}

	// Cache the token hash so the auth middleware can skip the DB read.
	cacheKey := utils.AuthCachePrefix + user.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, user.TokenHash, tokenDuration).Err(); err != nil {
		logger.Warn("Failed to cache token hash", zap.String("userID", user.ID), zap.Error(err))
	}

	return &AuthResponse{User: user, Token: token}, nil
}

func (s *DefaultUserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.NewAppError("User not found", http.StatusNotFound, "USER_NOT_FOUND")
	}
	return user, nil
}

// UpdateUser applies profile field changes and returns the updated record.
func (s *DefaultUserService) UpdateUser(ctx context.Context, userID string, updates models.UserUpdateRequest) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := bson.M{"updated_at": time.Now()}
	if updates.Name != "" {
		user.Name = updates.Name
		fields["name"] = updates.Name
	}
	if updates.Email != "" {
		user.Email = updates.Email
		fields["email"] = updates.Email
	}

	if err := s.Repo.UpdateSetDocument(ctx, userID, fields); err != nil {
		utils.GetLogger().Error("Failed to update user", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// UpdatePreferences merges the partial update into stored preferences.
func (s *DefaultUserService) UpdatePreferences(ctx context.Context, userID string, prefs PreferencesUpdate) (*models.UserPreferences, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := user.Preferences
	if prefs.Language != nil {
		merged.Language = *prefs.Language
	}
	if prefs.Currency != nil {
		merged.Currency = *prefs.Currency
	}
	if prefs.Notifications != nil {
		merged.Notifications = *prefs.Notifications
	}

	updates := bson.M{"preferences": merged, "updated_at": time.Now()}
	if err := s.Repo.UpdateSetDocument(ctx, userID, updates); err != nil {
		utils.GetLogger().Error("Failed to update preferences", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return &merged, nil
}

// AddPaymentMethod appends a new payment method to the user's saved list.
func (s *DefaultUserService) AddPaymentMethod(ctx context.Context, userID string, method models.PaymentMethod) (*models.PaymentMethod, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	method.ID = uuid.New().String()
	methods := append(user.Preferences.SavedPaymentMethods, method)

	updates := bson.M{"preferences.saved_payment_methods": methods, "updated_at": time.Now()}
	if err := s.Repo.UpdateSetDocument(ctx, userID, updates); err != nil {
		utils.GetLogger().Error("Failed to add payment method", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return &method, nil
}

// RemovePaymentMethod drops the payment method with the given ID.
func (s *DefaultUserService) RemovePaymentMethod(ctx context.Context, userID, paymentMethodID string) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	methods := make([]models.PaymentMethod, 0, len(user.Preferences.SavedPaymentMethods))
	for _, pm := range user.Preferences.SavedPaymentMethods {
		if pm.ID != paymentMethodID {
			methods = append(methods, pm)
		}
	}

	updates := bson.M{"preferences.saved_payment_methods": methods, "updated_at": time.Now()}
	if err := s.Repo.UpdateSetDocument(ctx, userID, updates); err != nil {
		utils.GetLogger().Error("Failed to remove payment method", zap.String("userID", userID), zap.Error(err))
		return err
	}
	return nil
}
