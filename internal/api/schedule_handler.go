package api

import (
	"net/http"

	"fitweek/fitness-tracker/internal/catalog"
	"fitweek/fitness-tracker/internal/dates"
	"fitweek/fitness-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the weekly schedule and the static workout catalog.
type ScheduleHandler struct{}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// WeekDayResponse is one day in the weekly schedule view.
type WeekDayResponse struct {
	Day     string `json:"day"`
	Date    string `json:"date"`
	IsToday bool   `json:"isToday"`
	RestDay bool   `json:"restDay"`
	HasPlan bool   `json:"hasPlan"`
}

// DayPlanResponse is a catalog lookup result. An unknown or rest day returns
// hasWorkout=false with no plan — "no workout" is a result, not an error.
type DayPlanResponse struct {
	HasWorkout bool                `json:"hasWorkout"`
	Plan       *domain.WorkoutPlan `json:"plan,omitempty"`
	Daily      *domain.WorkoutPlan `json:"daily,omitempty"`
}

// GetWeek returns the 7 days of the current Monday-start week.
func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	week := dates.CurrentWeek()
	resp := make([]WeekDayResponse, 0, len(week))
	for _, wd := range week {
		_, hasPlan := catalog.Lookup(wd.DayName)
		resp = append(resp, WeekDayResponse{
			Day:     wd.DayName,
			Date:    wd.Key,
			IsToday: wd.IsToday,
			RestDay: dates.IsRestDay(wd.DayName),
			HasPlan: hasPlan,
		})
	}
	c.JSON(http.StatusOK, gin.H{"week": resp, "today": dates.CurrentWeekday()})
}

// GetDayPlan returns the catalog plan for a day route key ("monday").
// The Daily pseudo-plan is always included since it applies every day.
func (h *ScheduleHandler) GetDayPlan(c *gin.Context) {
	day := c.Param("day")

	resp := DayPlanResponse{}
	daily := catalog.Daily()
	resp.Daily = &daily

	if plan, ok := catalog.LookupByRoute(day); ok {
		resp.HasWorkout = true
		resp.Plan = &plan
	}
	c.JSON(http.StatusOK, resp)
}
