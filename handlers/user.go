// File: handlers/user.go
package handlers

import (
	"net/http"

	"tripmate/models"
	"tripmate/services/user"
	"tripmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterUserHandler handles user registration.
func (hb *HandlerBundle) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	registered, err := hb.UserSvc.Register(c.Request.Context(), req)
	if err != nil {
		logger.Error("User registration failed", zap.Error(err))
		respondServiceError(c, err, "Registration failed")
		return
	}
	c.JSON(http.StatusCreated, registered)
}

// LoginUserHandler handles login and returns the user plus a session token.
func (hb *HandlerBundle) LoginUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	auth, err := hb.UserSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Error("Login failed", zap.Error(err))
		respondServiceError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, auth)
}

// GetProfileHandler returns the authenticated user's profile.
func (hb *HandlerBundle) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := hb.UserSvc.GetUser(c.Request.Context(), userID.(string))
	if err != nil {
		logger.Error("Failed to get user profile", zap.Error(err))
		respondServiceError(c, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler updates the authenticated user's profile.
func (hb *HandlerBundle) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := hb.UserSvc.UpdateUser(c.Request.Context(), userID.(string), req)
	if err != nil {
		logger.Error("Failed to update profile", zap.Error(err))
		respondServiceError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdatePreferencesHandler merges preference changes for the user.
func (hb *HandlerBundle) UpdatePreferencesHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req user.PreferencesUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid preferences request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	prefs, err := hb.UserSvc.UpdatePreferences(c.Request.Context(), userID.(string), req)
	if err != nil {
		logger.Error("Failed to update preferences", zap.Error(err))
		respondServiceError(c, err, "Failed to update preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// AddPaymentMethodHandler stores a new payment method on the profile.
func (hb *HandlerBundle) AddPaymentMethodHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.PaymentMethod
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid payment method request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	method, err := hb.UserSvc.AddPaymentMethod(c.Request.Context(), userID.(string), req)
	if err != nil {
		logger.Error("Failed to add payment method", zap.Error(err))
		respondServiceError(c, err, "Failed to add payment method")
		return
	}
	c.JSON(http.StatusCreated, method)
}

// RemovePaymentMethodHandler deletes a stored payment method.
func (hb *HandlerBundle) RemovePaymentMethodHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	methodID := c.Param("id")
	if err := hb.UserSvc.RemovePaymentMethod(c.Request.Context(), userID.(string), methodID); err != nil {
		logger.Error("Failed to remove payment method", zap.Error(err))
		respondServiceError(c, err, "Failed to remove payment method")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// respondServiceError maps structured application errors to their HTTP
// status; anything else becomes a 500 with the given fallback message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	if appErr, ok := err.(*utils.AppError); ok {
		c.JSON(appErr.Status, utils.ErrorResponse{Code: appErr.Code, Message: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
