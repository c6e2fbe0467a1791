package handlers

import (
	"errors"
	"net/http"

	"pawtrack/middleware"
	"pawtrack/models"
	summaryService "pawtrack/services/summary"
	"pawtrack/services/tasks"
	"pawtrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// SummaryHandler exposes AI summary endpoints. Generation runs on the
// background worker; clients poll for the result.
type SummaryHandler struct {
	SummaryService summaryService.Service
	TaskClient     *asynq.Client
}

func NewSummaryHandler(svc summaryService.Service, client *asynq.Client) *SummaryHandler {
	return &SummaryHandler{SummaryService: svc, TaskClient: client}
}

// RequestSummaryHandler handles POST /pets/:petId/summaries.
func (h *SummaryHandler) RequestSummaryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var body struct {
		Kind   string `json:"kind" binding:"required,oneof=health_summary vet_visit_summary reminder_suggestion"`
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := models.SummaryRequest{
		OwnerID: middleware.OwnerID(c),
		PetID:   c.Param("petId"),
		Kind:    body.Kind,
		Prompt:  body.Prompt,
	}

	// Serve a fresh cached result without re-queuing.
	if cached, err := h.SummaryService.GetCached(c.Request.Context(), req); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	task, err := tasks.NewSummaryTask(req)
	if err != nil {
		logger.Error("Failed to build summary task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request summary"})
		return
	}
	if _, err := h.TaskClient.EnqueueContext(c.Request.Context(), task); err != nil {
		logger.Error("Failed to enqueue summary task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request summary"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

// GetSummaryHandler handles GET /pets/:petId/summaries/:kind.
func (h *SummaryHandler) GetSummaryHandler(c *gin.Context) {
	req := models.SummaryRequest{
		OwnerID: middleware.OwnerID(c),
		PetID:   c.Param("petId"),
		Kind:    c.Param("kind"),
	}

	result, err := h.SummaryService.GetCached(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, summaryService.ErrNotReady) {
			c.JSON(http.StatusAccepted, gin.H{"status": "pending"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load summary"})
		return
	}
	c.JSON(http.StatusOK, result)
}
