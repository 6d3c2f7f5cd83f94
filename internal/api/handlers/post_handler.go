package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gitforum/app-trending-api/internal/services"
)

// PostHandler serves single-post lookups.
type PostHandler struct {
	service *services.TrendingService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(service *services.TrendingService) *PostHandler {
	return &PostHandler{service: service}
}

// GetPost godoc
// @Summary Get a post by ID
// @Description Returns a single post, fetched from the forum backend with a
// @Description snapshot fallback when the backend is unreachable.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID" example(42)
// @Success 200 {object} models.Post
// @Failure 400 {object} map[string]string "Malformed ID"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /api/v1/posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post id must be an integer"})
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}
