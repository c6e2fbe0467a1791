package handlers

import (
	"net/http"

	"pawtrack/middleware"
	"pawtrack/models"
	feedService "pawtrack/services/feed"

	"github.com/gin-gonic/gin"
)

// FeedHandler exposes community feed endpoints.
type FeedHandler struct {
	FeedService feedService.FeedService
}

func NewFeedHandler(svc feedService.FeedService) *FeedHandler {
	return &FeedHandler{FeedService: svc}
}

// CreatePostHandler handles POST /feed.
func (h *FeedHandler) CreatePostHandler(c *gin.Context) {
	var post models.FeedPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post.OwnerID = middleware.OwnerID(c)

	created, err := h.FeedService.CreatePost(c.Request.Context(), &post)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListFeedHandler handles GET /feed.
func (h *FeedHandler) ListFeedHandler(c *gin.Context) {
	posts, err := h.FeedService.ListRecent(c.Request.Context(), listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListMyPostsHandler handles GET /feed/mine.
func (h *FeedHandler) ListMyPostsHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	posts, err := h.FeedService.ListByOwner(c.Request.Context(), ownerID, listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// DeletePostHandler handles DELETE /feed/:postId.
func (h *FeedHandler) DeletePostHandler(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	if err := h.FeedService.DeletePost(c.Request.Context(), ownerID, c.Param("postId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
