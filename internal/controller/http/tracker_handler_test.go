package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/usecase"
	"marketing-hub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTrackerUseCase is a mock implementation of TrackerUseCase
type MockTrackerUseCase struct {
	mock.Mock
}

func (m *MockTrackerUseCase) Snapshot(weeks int, assignee string) ([]entity.WeekRollup, error) {
	args := m.Called(weeks, assignee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.WeekRollup), args.Error(1)
}

func setupTrackerRouter(uc usecase.TrackerUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTrackerHandler(uc, logger.New())

	router := gin.New()
	router.GET("/content-tracker", handler.GetTracker)
	return router
}

func TestGetTracker_Defaults(t *testing.T) {
	uc := new(MockTrackerUseCase)
	monday := entity.NewDate(2026, time.January, 5)
	uc.On("Snapshot", 0, "").Return([]entity.WeekRollup{
		entity.EmptyWeekRollup(monday, ""),
		entity.EmptyWeekRollup(monday.AddWeeks(1), ""),
	}, nil)

	router := setupTrackerRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/content-tracker", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Tracker []struct {
			WeekOf string `json:"week_of"`
		} `json:"tracker"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Tracker, 2)
	assert.Equal(t, "2026-01-05", resp.Tracker[0].WeekOf)
	uc.AssertExpectations(t)
}

func TestGetTracker_WeeksAndAssignee(t *testing.T) {
	uc := new(MockTrackerUseCase)
	uc.On("Snapshot", 4, "jordan").Return([]entity.WeekRollup{}, nil)

	router := setupTrackerRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/content-tracker?weeks=4&assignee=jordan", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestGetTracker_BadWeeks(t *testing.T) {
	uc := new(MockTrackerUseCase)
	router := setupTrackerRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/content-tracker?weeks=soon", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Snapshot", mock.Anything, mock.Anything)
}
