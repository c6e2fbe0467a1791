package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"pawtrack/middleware"
	"pawtrack/models"
	vaultService "pawtrack/services/vault"
	"pawtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VaultHandler exposes document vault endpoints.
type VaultHandler struct {
	VaultService vaultService.VaultService
}

func NewVaultHandler(svc vaultService.VaultService) *VaultHandler {
	return &VaultHandler{VaultService: svc}
}

// UploadDocumentHandler handles POST /pets/:petId/vault. The document
// arrives as a multipart form with a "file" part and a "name" field.
func (h *VaultHandler) UploadDocumentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	doc := &models.VaultDocument{
		OwnerID:      middleware.OwnerID(c),
		PetID:        c.Param("petId"),
		Name:         c.PostForm("name"),
		ResourceType: c.PostForm("resourceType"),
	}
	if doc.Name == "" {
		doc.Name = fileHeader.Filename
	}

	stored, err := h.VaultService.Upload(c.Request.Context(), doc, tempFilePath)
	if err != nil {
		logger.Error("Failed to store vault document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store document", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// ListDocumentsHandler handles GET /pets/:petId/vault.
func (h *VaultHandler) ListDocumentsHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	docs, err := h.VaultService.ListByPet(c.Request.Context(), ownerID, c.Param("petId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// DocumentURLHandler handles GET /vault/:docId/url.
func (h *VaultHandler) DocumentURLHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	url, err := h.VaultService.DownloadURL(c.Request.Context(), ownerID, c.Param("docId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteDocumentHandler handles DELETE /vault/:docId.
func (h *VaultHandler) DeleteDocumentHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	if err := h.VaultService.Delete(c.Request.Context(), ownerID, c.Param("docId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
