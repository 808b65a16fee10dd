package user

import (
	"context"
	"fmt"
	"testing"

	"tripmate/models"
	"tripmate/utils"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
	updates map[string]bson.M
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
		updates: make(map[string]bson.M),
	}
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	copied := *u
	return &copied, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *models.User) error {
	copied := *u
	r.byID[u.ID] = &copied
	r.byEmail[u.Email] = &copied
	return nil
}

func (r *stubUserRepo) UpdateSetDocument(_ context.Context, id string, updates bson.M) error {
	r.updates[id] = updates
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func TestRegister_CreatesUserWithDefaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := &DefaultUserService{Repo: repo}

	registered, err := svc.Register(context.Background(), models.UserRegistrationData{
		Email:    "ada@example.com",
		Password: "s3cret-pass",
		Name:     "Ada",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.ID)
	require.Equal(t, "ada@example.com", registered.Email)
	require.Equal(t, "en", registered.Preferences.Language)
	require.Equal(t, "USD", registered.Preferences.Currency)
	require.True(t, registered.Preferences.Notifications)
	require.Empty(t, registered.Preferences.SavedPaymentMethods)

	// The stored hash verifies against the original password.
	stored := repo.byID[registered.ID]
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	repo.byEmail["ada@example.com"] = &models.User{ID: "u1", Email: "ada@example.com"}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(context.Background(), models.UserRegistrationData{
		Email:    "ada@example.com",
		Password: "pw",
		Name:     "Ada",
	})
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	require.Equal(t, "USER_EXISTS", appErr.Code)
}

func TestUpdatePreferences_MergesPartialUpdate(t *testing.T) {
	repo := newStubUserRepo()
	repo.byID["u1"] = &models.User{
		ID: "u1",
		Preferences: models.UserPreferences{
			Language:      "en",
			Currency:      "USD",
			Notifications: true,
		},
	}
	svc := &DefaultUserService{Repo: repo}

	currency := "NOK"
	prefs, err := svc.UpdatePreferences(context.Background(), "u1", PreferencesUpdate{Currency: &currency})
	require.NoError(t, err)
	require.Equal(t, "NOK", prefs.Currency)
	require.Equal(t, "en", prefs.Language)
	require.True(t, prefs.Notifications)
}

func TestAddPaymentMethod_AssignsID(t *testing.T) {
	repo := newStubUserRepo()
	repo.byID["u1"] = &models.User{ID: "u1", Preferences: models.UserPreferences{}}
	svc := &DefaultUserService{Repo: repo}

	method, err := svc.AddPaymentMethod(context.Background(), "u1", models.PaymentMethod{
		Type:           "credit_card",
		LastFourDigits: "4242",
	})
	require.NoError(t, err)
	require.NotEmpty(t, method.ID)
	require.Equal(t, "credit_card", method.Type)

	updates := repo.updates["u1"]
	require.Contains(t, updates, "preferences.saved_payment_methods")
}

func TestRemovePaymentMethod_DropsOnlyTheTarget(t *testing.T) {
	repo := newStubUserRepo()
	repo.byID["u1"] = &models.User{
		ID: "u1",
		Preferences: models.UserPreferences{
			SavedPaymentMethods: []models.PaymentMethod{
				{ID: "pm-1", Type: "credit_card"},
				{ID: "pm-2", Type: "paypal"},
			},
		},
	}
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.RemovePaymentMethod(context.Background(), "u1", "pm-1"))

	methods, ok := repo.updates["u1"]["preferences.saved_payment_methods"].([]models.PaymentMethod)
	require.True(t, ok)
	require.Len(t, methods, 1)
	require.Equal(t, "pm-2", methods[0].ID)
}

func TestGetUser_MapsMissingUserToAppError(t *testing.T) {
	svc := &DefaultUserService{Repo: newStubUserRepo()}

	_, err := svc.GetUser(context.Background(), "missing")
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	require.Equal(t, "USER_NOT_FOUND", appErr.Code)
}
