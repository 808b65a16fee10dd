// File: handlers/chat.go
package handlers

import (
	"net/http"

	"tripmate/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessagesHandler accepts an inbound chat activity, runs one
// retrieval-augmented turn through the conversation engine, and returns
// the reply as an activity payload.
func (hb *HandlerBundle) MessagesHandler(c *gin.Context) {
	logger := getLogger(c)

	var activity models.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		logger.Error("Invalid message activity", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := hb.ConversationSvc.ProcessMessage(c.Request.Context(), activity.From, activity.Text)
	if err != nil {
		logger.Error("Failed to process message", zap.String("userID", activity.From), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}

	state, err := hb.ConversationSvc.GetState(c.Request.Context(), activity.From)
	if err != nil {
		logger.Error("Failed to read conversation state", zap.String("userID", activity.From), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}

	c.JSON(http.StatusOK, models.ActivityReply{
		Type: "message",
		Step: state.CurrentStep,
		Text: response,
	})
}

// ScriptedMessageHandler returns the canned step guidance for a turn and
// advances the scripted flow.
func (hb *HandlerBundle) ScriptedMessageHandler(c *gin.Context) {
	logger := getLogger(c)

	var activity models.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		logger.Error("Invalid message activity", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reply, step, err := hb.ConversationSvc.ScriptedReply(c.Request.Context(), activity.From, activity.Text)
	if err != nil {
		logger.Error("Failed to produce scripted reply", zap.String("userID", activity.From), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}

	c.JSON(http.StatusOK, models.ActivityReply{
		Type: "message",
		Step: step,
		Text: reply,
	})
}

// ResetConversationHandler deletes the stored conversation and starts over.
func (hb *HandlerBundle) ResetConversationHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reset request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := hb.ConversationSvc.ResetConversation(c.Request.Context(), req.UserID); err != nil {
		logger.Error("Failed to reset conversation", zap.String("userID", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset conversation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
