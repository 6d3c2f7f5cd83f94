package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gitforum/app-trending-api/internal/models"
	"github.com/gitforum/app-trending-api/internal/services"
)

// TrendingHandler serves the ranked post listings.
type TrendingHandler struct {
	service *services.TrendingService
}

// NewTrendingHandler creates a new trending handler.
func NewTrendingHandler(service *services.TrendingService) *TrendingHandler {
	return &TrendingHandler{service: service}
}

// Trending godoc
// @Summary Trending posts
// @Description Ranked post listing for the trending page. Posts are filtered
// @Description by search text, language, tags and time window, scored by
// @Description engagement velocity (likes + comments*2 + forks*3 over age^1.5),
// @Description sorted, and given a dense 1-based rank. The top three ranks
// @Description carry the hot badge. Default window: today.
// @Tags trending
// @Produce json
// @Param q query string false "Free-text search over title, description and tags" example("react hooks")
// @Param language query string false "Language filter; 'All' disables it" example("TypeScript")
// @Param tags query string false "Tag filter, comma-separated, OR semantics" example("react,hooks")
// @Param window query string false "Time window" Enums(today, week, month, all) default(today)
// @Param sort query string false "Sort key" Enums(growth, stars, forks, comments, recent) default(growth)
// @Param page query int false "Page of results" default(1) minimum(1)
// @Param per_page query int false "Results per page" default(20) minimum(1) maximum(100)
// @Success 200 {object} models.TrendingResponse
// @Failure 400 {object} map[string]string "Invalid window or sort key"
// @Failure 502 {object} map[string]string "No post source available"
// @Router /api/v1/trending [get]
func (h *TrendingHandler) Trending(c *gin.Context) {
	h.query(c, "trending", models.WindowToday)
}

// Explore godoc
// @Summary Explore posts
// @Description Same ranking pipeline as /trending with the explore page's
// @Description defaults (window: week) and recency counters in the stats block.
// @Tags trending
// @Produce json
// @Param q query string false "Free-text search over title, description and tags"
// @Param language query string false "Language filter; 'All' disables it"
// @Param tags query string false "Tag filter, comma-separated, OR semantics"
// @Param window query string false "Time window" Enums(today, week, month, all) default(week)
// @Param sort query string false "Sort key" Enums(growth, stars, forks, comments, recent) default(growth)
// @Param page query int false "Page of results" default(1) minimum(1)
// @Param per_page query int false "Results per page" default(20) minimum(1) maximum(100)
// @Success 200 {object} models.TrendingResponse
// @Failure 400 {object} map[string]string "Invalid window or sort key"
// @Failure 502 {object} map[string]string "No post source available"
// @Router /api/v1/explore [get]
func (h *TrendingHandler) Explore(c *gin.Context) {
	h.query(c, "explore", models.WindowThisWeek)
}

func (h *TrendingHandler) query(c *gin.Context, endpoint string, defaultWindow models.TimeWindow) {
	var req models.TrendingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid parameters",
			"details": err.Error(),
		})
		return
	}

	result, err := h.service.Query(c.Request.Context(), endpoint, &req, defaultWindow)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidTimeWindow), errors.Is(err, models.ErrInvalidSortKey):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
