// File: handlers/content.go
package handlers

import (
	"net/http"
	"strconv"

	"tripmate/models"
	"tripmate/services/knowledge"
	"tripmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddContentHandler indexes one support document.
func (hb *HandlerBundle) AddContentHandler(c *gin.Context) {
	logger := getLogger(c)

	var item models.SupportContent
	if err := c.ShouldBindJSON(&item); err != nil {
		logger.Error("Invalid support content", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := hb.KnowledgeSvc.AddContent(c.Request.Context(), item); err != nil {
		logger.Error("Failed to add support content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add content"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": item.ID})
}

// GetContentHandler returns one support document by id.
func (hb *HandlerBundle) GetContentHandler(c *gin.Context) {
	item, err := hb.KnowledgeSvc.GetContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Content not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateContentHandler merges a partial update into a support document.
func (hb *HandlerBundle) UpdateContentHandler(c *gin.Context) {
	logger := getLogger(c)

	var updates knowledge.ContentUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		logger.Error("Invalid content update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := hb.KnowledgeSvc.UpdateContent(c.Request.Context(), c.Param("id"), updates); err != nil {
		logger.Error("Failed to update support content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteContentHandler removes a support document from the index.
func (hb *HandlerBundle) DeleteContentHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := hb.KnowledgeSvc.DeleteContent(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("Failed to delete support content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// BulkImportContentHandler indexes a batch of support documents.
func (hb *HandlerBundle) BulkImportContentHandler(c *gin.Context) {
	logger := getLogger(c)

	var items []models.SupportContent
	if err := c.ShouldBindJSON(&items); err != nil {
		logger.Error("Invalid bulk import payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := hb.KnowledgeSvc.BulkImport(c.Request.Context(), items); err != nil {
		logger.Error("Bulk import failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Bulk import failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": len(items)})
}

// SearchContentHandler runs a similarity search over the support corpus.
func (hb *HandlerBundle) SearchContentHandler(c *gin.Context) {
	logger := getLogger(c)

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter q"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	results, err := hb.KnowledgeSvc.SearchSimilarContent(c.Request.Context(), query, limit)
	if err != nil {
		logger.Error("Content search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
