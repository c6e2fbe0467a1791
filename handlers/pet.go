package handlers

import (
	"net/http"

	"pawtrack/middleware"
	"pawtrack/models"
	petService "pawtrack/services/pet"
	"pawtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PetHandler exposes pet profile endpoints.
type PetHandler struct {
	PetService petService.PetService
}

func NewPetHandler(svc petService.PetService) *PetHandler {
	return &PetHandler{PetService: svc}
}

// CreatePetHandler handles POST /pets.
func (h *PetHandler) CreatePetHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var pet models.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pet.OwnerID = middleware.OwnerID(c)

	created, err := h.PetService.Create(c.Request.Context(), &pet)
	if err != nil {
		logger.Error("Failed to create pet", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetPetHandler handles GET /pets/:petId.
func (h *PetHandler) GetPetHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	pet, err := h.PetService.Get(c.Request.Context(), ownerID, c.Param("petId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found"})
		return
	}
	c.JSON(http.StatusOK, pet)
}

// ListPetsHandler handles GET /pets.
func (h *PetHandler) ListPetsHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	pets, err := h.PetService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pets"})
		return
	}
	c.JSON(http.StatusOK, pets)
}

// UpdatePetHandler handles PUT /pets/:petId.
func (h *PetHandler) UpdatePetHandler(c *gin.Context) {
	var pet models.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pet.OwnerID = middleware.OwnerID(c)
	pet.ID = c.Param("petId")

	updated, err := h.PetService.Update(c.Request.Context(), &pet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePetHandler handles DELETE /pets/:petId.
func (h *PetHandler) DeletePetHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	if err := h.PetService.Delete(c.Request.Context(), ownerID, c.Param("petId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pet deleted"})
}
