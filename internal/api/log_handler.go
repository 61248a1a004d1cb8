package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"fitweek/fitness-tracker/internal/domain"
	"fitweek/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// LogHandler serves per-day workout log reads and writes.
type LogHandler struct {
	logService service.WorkoutLogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService service.WorkoutLogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// --- DTOs ---

// SaveLogRequest is a full-day entry batch. Entries replace whatever was
// stored for the day; partial updates are not merged.
type SaveLogRequest struct {
	WorkoutDayID string               `json:"workoutDayId" binding:"required"`
	Entries      []service.EntryInput `json:"entries"`
}

type LogEntryResponse struct {
	ExerciseID    string   `json:"exerciseId"`
	Completed     bool     `json:"completed"`
	Weights       []string `json:"weights"`
	SetsCompleted *int     `json:"setsCompleted,omitempty"`
	RepsCompleted *int     `json:"repsCompleted,omitempty"`
}

type SaveLogResponse struct {
	DateKey     string `json:"dateKey"`
	CompletedAt string `json:"completedAt,omitempty"`
}

// --- Handler Methods ---

// GetDayLog returns the member's log entries for a date key. A day without
// a saved log yields an empty entries array.
func (h *LogHandler) GetDayLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	dateKey := dateKeyParam(c)

	entries, err := h.logService.GetDayLog(c.Request.Context(), userID, dateKey)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load workout log")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"dateKey": dateKey, "entries": mapEntries(entries)})
}

// SaveDayLog replaces the member's log for a date key with the posted batch.
func (h *LogHandler) SaveDayLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	dateKey := dateKeyParam(c)

	var req SaveLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	saved, err := h.logService.SaveDayLog(c.Request.Context(), userID, dateKey, req.WorkoutDayID, req.Entries)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save workout log")
		}
		return
	}

	resp := SaveLogResponse{DateKey: saved.DateKey}
	if saved.CompletedAt != nil {
		resp.CompletedAt = saved.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	c.JSON(http.StatusOK, resp)
}

// dateKeyParam returns the date-key path segment. Date keys carry spaces
// and commas ("Monday, May 3, 2021"), so clients send them percent-encoded.
func dateKeyParam(c *gin.Context) string {
	raw := c.Param("dateKey")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func mapEntries(entries []domain.WorkoutLogEntry) []LogEntryResponse {
	resp := make([]LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, LogEntryResponse{
			ExerciseID:    e.ExerciseID,
			Completed:     e.Completed,
			Weights:       e.Weights,
			SetsCompleted: e.SetsCompleted,
			RepsCompleted: e.RepsCompleted,
		})
	}
	return resp
}
