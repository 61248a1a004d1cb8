package api

import (
	"net/http"

	"fitweek/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler serves the weekly progress aggregation.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetWeeklyProgress returns per-day completion counts for the current week
// plus the total and the clamped target ratio.
func (h *ProgressHandler) GetWeeklyProgress(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	progress, err := h.progressService.WeeklyStats(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute weekly progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}
