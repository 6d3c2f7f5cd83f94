package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gitforum/app-trending-api/internal/ai"
)

// AIHandler serves the Gemini-backed code assistance endpoints.
type AIHandler struct {
	assistant *ai.Assistant
	validator *validator.Validate
}

// NewAIHandler creates a new AI handler.
func NewAIHandler(assistant *ai.Assistant) *AIHandler {
	return &AIHandler{
		assistant: assistant,
		validator: validator.New(),
	}
}

// CommitMessageRequest is the payload for commit message generation.
type CommitMessageRequest struct {
	Filename string `json:"filename" validate:"required,max=500"`
	Diff     string `json:"diff" validate:"required"`
}

// CodeReviewRequest is the payload for automated code review.
type CodeReviewRequest struct {
	Filename string `json:"filename" validate:"required,max=500"`
	Diff     string `json:"diff" validate:"required"`
	Language string `json:"language" validate:"omitempty,max=100"`
}

// GenerateCommit godoc
// @Summary Generate a commit message
// @Description Produces a conventional commit message for a diff using the
// @Description configured Gemini model.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body CommitMessageRequest true "File diff"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Missing filename or diff"
// @Failure 502 {object} map[string]string "Model call failed"
// @Failure 503 {object} map[string]string "AI features disabled"
// @Router /api/v1/ai/generate-commit [post]
func (h *AIHandler) GenerateCommit(c *gin.Context) {
	if !h.assistant.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI features are not configured"})
		return
	}

	var req CommitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed: " + err.Error()})
		return
	}

	message, err := h.assistant.GenerateCommitMessage(c.Request.Context(), req.Filename, req.Diff)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "commit message generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"commit_message": message})
}

// ReviewCode godoc
// @Summary Review a code diff
// @Description Runs an automated review over a diff and returns structured
// @Description findings plus a markdown rendering.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body CodeReviewRequest true "File diff"
// @Success 200 {object} ai.ReviewReport
// @Failure 400 {object} map[string]string "Missing filename or diff"
// @Failure 502 {object} map[string]string "Model call failed"
// @Failure 503 {object} map[string]string "AI features disabled"
// @Router /api/v1/ai/code-review [post]
func (h *AIHandler) ReviewCode(c *gin.Context) {
	if !h.assistant.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI features are not configured"})
		return
	}

	var req CodeReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed: " + err.Error()})
		return
	}

	report, err := h.assistant.ReviewCode(c.Request.Context(), req.Filename, req.Diff, req.Language)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "code review failed"})
		return
	}

	c.JSON(http.StatusOK, report)
}
