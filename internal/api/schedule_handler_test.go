package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitweek/fitness-tracker/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := api.NewScheduleHandler()
	router.GET("/schedule/week", h.GetWeek)
	router.GET("/schedule/day/:day", h.GetDayPlan)
	return router
}

func TestGetWeek_SevenDaysMondayFirst(t *testing.T) {
	router := scheduleRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedule/week", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Week []struct {
			Day     string `json:"day"`
			Date    string `json:"date"`
			IsToday bool   `json:"isToday"`
			RestDay bool   `json:"restDay"`
			HasPlan bool   `json:"hasPlan"`
		} `json:"week"`
		Today string `json:"today"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Week, 7)
	assert.Equal(t, "Monday", resp.Week[0].Day)
	assert.Equal(t, "Sunday", resp.Week[6].Day)

	todayCount := 0
	for _, d := range resp.Week {
		if d.IsToday {
			todayCount++
			assert.Equal(t, resp.Today, d.Day)
		}
	}
	assert.Equal(t, 1, todayCount)

	assert.True(t, resp.Week[5].RestDay)
	assert.False(t, resp.Week[5].HasPlan)
	assert.True(t, resp.Week[0].HasPlan)
}

func TestGetDayPlan_KnownDay(t *testing.T) {
	router := scheduleRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedule/day/monday", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		HasWorkout bool `json:"hasWorkout"`
		Plan       *struct {
			ID        string `json:"id"`
			Exercises []struct {
				ID string `json:"id"`
			} `json:"exercises"`
		} `json:"plan"`
		Daily *struct {
			ID string `json:"id"`
		} `json:"daily"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.HasWorkout)
	require.NotNil(t, resp.Plan)
	assert.Equal(t, "monday", resp.Plan.ID)
	assert.NotEmpty(t, resp.Plan.Exercises)
	require.NotNil(t, resp.Daily)
	assert.Equal(t, "daily", resp.Daily.ID)
}

// Unknown and rest days are empty results with a 200, never errors.
func TestGetDayPlan_UnknownDayIsEmptyResult(t *testing.T) {
	router := scheduleRouter()

	for _, day := range []string{"saturday", "funday"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/schedule/day/"+day, nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, day)

		var resp struct {
			HasWorkout bool            `json:"hasWorkout"`
			Plan       json.RawMessage `json:"plan"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.HasWorkout, day)
		assert.Empty(t, resp.Plan, day)
	}
}
