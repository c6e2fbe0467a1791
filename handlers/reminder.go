package handlers

import (
	"net/http"

	"pawtrack/middleware"
	"pawtrack/models"
	reminderService "pawtrack/services/reminder"
	"pawtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes reminder management endpoints.
type ReminderHandler struct {
	ReminderService reminderService.ReminderService
}

func NewReminderHandler(svc reminderService.ReminderService) *ReminderHandler {
	return &ReminderHandler{ReminderService: svc}
}

func reminderKey(c *gin.Context) models.ReminderKey {
	return models.ReminderKey{
		OwnerID:    middleware.OwnerID(c),
		PetID:      c.Param("petId"),
		ReminderID: c.Param("reminderId"),
	}
}

// CreateReminderHandler handles POST /pets/:petId/reminders.
func (h *ReminderHandler) CreateReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var reminder models.Reminder
	if err := c.ShouldBindJSON(&reminder); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reminder.OwnerID = middleware.OwnerID(c)
	reminder.PetID = c.Param("petId")

	created, err := h.ReminderService.Create(c.Request.Context(), &reminder)
	if err != nil {
		logger.Error("Failed to create reminder", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPetRemindersHandler handles GET /pets/:petId/reminders.
func (h *ReminderHandler) ListPetRemindersHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	reminders, err := h.ReminderService.ListByPet(c.Request.Context(), ownerID, c.Param("petId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reminders"})
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// ListOwnerRemindersHandler handles GET /reminders.
func (h *ReminderHandler) ListOwnerRemindersHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	reminders, err := h.ReminderService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reminders"})
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// UpdateReminderHandler handles PUT /pets/:petId/reminders/:reminderId.
func (h *ReminderHandler) UpdateReminderHandler(c *gin.Context) {
	var reminder models.Reminder
	if err := c.ShouldBindJSON(&reminder); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	key := reminderKey(c)
	reminder.OwnerID = key.OwnerID
	reminder.PetID = key.PetID
	reminder.ID = key.ReminderID

	updated, err := h.ReminderService.Update(c.Request.Context(), &reminder)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeactivateReminderHandler handles POST /pets/:petId/reminders/:reminderId/deactivate.
func (h *ReminderHandler) DeactivateReminderHandler(c *gin.Context) {
	if err := h.ReminderService.Deactivate(c.Request.Context(), reminderKey(c)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deactivated"})
}

// DeleteReminderHandler handles DELETE /pets/:petId/reminders/:reminderId.
func (h *ReminderHandler) DeleteReminderHandler(c *gin.Context) {
	if err := h.ReminderService.Delete(c.Request.Context(), reminderKey(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
}
