package handlers

import (
	"net/http"

	"pawtrack/middleware"
	"pawtrack/models"
	"pawtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterDeviceHandler handles POST /devices.
func (h *UserHandler) RegisterDeviceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ownerID := middleware.OwnerID(c)

	var req models.RegisterDeviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.UserService.RegisterDevice(c.Request.Context(), ownerID, req)
	if err != nil {
		logger.Error("Failed to register device", zap.String("ownerId", ownerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register device"})
		return
	}
	c.JSON(http.StatusCreated, record)
}

// UnregisterDeviceHandler handles DELETE /devices.
func (h *UserHandler) UnregisterDeviceHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.UserService.UnregisterDevice(c.Request.Context(), ownerID, req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unregister device"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device unregistered"})
}

// ListDevicesHandler handles GET /devices.
func (h *UserHandler) ListDevicesHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	devices, err := h.UserService.ListDevices(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list devices"})
		return
	}
	c.JSON(http.StatusOK, devices)
}
