package handlers

import (
	"net/http"
	"strconv"

	"pawtrack/middleware"
	"pawtrack/models"
	healthService "pawtrack/services/health"
	"pawtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler exposes health log and weight endpoints.
type HealthHandler struct {
	HealthService healthService.HealthService
}

func NewHealthHandler(svc healthService.HealthService) *HealthHandler {
	return &HealthHandler{HealthService: svc}
}

func listLimit(c *gin.Context) int64 {
	n, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// CreateHealthLogHandler handles POST /pets/:petId/logs.
func (h *HealthHandler) CreateHealthLogHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var entry models.HealthLog
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry.OwnerID = middleware.OwnerID(c)
	entry.PetID = c.Param("petId")

	created, err := h.HealthService.CreateLog(c.Request.Context(), &entry)
	if err != nil {
		logger.Error("Failed to create health log", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListHealthLogsHandler handles GET /pets/:petId/logs.
func (h *HealthHandler) ListHealthLogsHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	logs, err := h.HealthService.ListLogs(c.Request.Context(), ownerID, c.Param("petId"), listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list health logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// DeleteHealthLogHandler handles DELETE /pets/:petId/logs/:logId.
func (h *HealthHandler) DeleteHealthLogHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	if err := h.HealthService.DeleteLog(c.Request.Context(), ownerID, c.Param("petId"), c.Param("logId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete health log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Health log deleted"})
}

// RecordWeightHandler handles POST /pets/:petId/weights.
func (h *HealthHandler) RecordWeightHandler(c *gin.Context) {
	var entry models.WeightEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry.OwnerID = middleware.OwnerID(c)
	entry.PetID = c.Param("petId")

	created, err := h.HealthService.RecordWeight(c.Request.Context(), &entry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListWeightsHandler handles GET /pets/:petId/weights.
func (h *HealthHandler) ListWeightsHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	weights, err := h.HealthService.ListWeights(c.Request.Context(), ownerID, c.Param("petId"), listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list weights"})
		return
	}
	c.JSON(http.StatusOK, weights)
}
