package handlers

import (
	"errors"
	"net/http"

	"pawtrack/middleware"
	"pawtrack/models"
	userService "pawtrack/services/user"
	"pawtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account and device endpoints.
type UserHandler struct {
	UserService userService.UserService
}

func NewUserHandler(svc userService.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// RegisterUserHandler handles POST /auth/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, userService.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /auth/signin.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AuthenticateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.UserService.Authenticate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, userService.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to authenticate user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler handles GET /me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	user, err := h.UserService.GetByID(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
