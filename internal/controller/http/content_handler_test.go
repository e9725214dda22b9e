package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
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

// MockContentUseCase is a mock implementation of ContentUseCase
type MockContentUseCase struct {
	mock.Mock
}

func (m *MockContentUseCase) CreateContent(input usecase.CreateContentInput, actor string) (*entity.SocialContent, error) {
	args := m.Called(input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SocialContent), args.Error(1)
}

func (m *MockContentUseCase) GetContent(id int64) (*entity.SocialContent, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SocialContent), args.Error(1)
}

func (m *MockContentUseCase) ListContent(filter entity.ContentFilter) ([]*entity.SocialContent, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SocialContent), args.Error(1)
}

func (m *MockContentUseCase) UpdateContent(id int64, input usecase.UpdateContentInput, actor string) (*entity.SocialContent, error) {
	args := m.Called(id, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SocialContent), args.Error(1)
}

func (m *MockContentUseCase) DeleteContent(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentUseCase) RepairWeeks() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockContentUseCase) UploadAsset(file *multipart.FileHeader) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

func (m *MockContentUseCase) DeleteAsset(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func setupContentRouter(uc usecase.ContentUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewContentHandler(uc, logger.New())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("actor", "dana")
		c.Next()
	})
	router.POST("/content", handler.CreateContent)
	router.GET("/content", handler.ListContent)
	router.GET("/content/:id", handler.GetContent)
	router.PUT("/content/:id", handler.UpdateContent)
	router.DELETE("/content/:id", handler.DeleteContent)
	router.POST("/admin/fix-weeks", handler.RepairWeeks)
	router.DELETE("/assets/:key", handler.DeleteAsset)
	return router
}

func TestCreateContent_Success(t *testing.T) {
	uc := new(MockContentUseCase)
	uc.On("CreateContent", mock.MatchedBy(func(input usecase.CreateContentInput) bool {
		return input.PostDate.Equal(entity.NewDate(2026, time.January, 8)) && input.Platform == "Instagram"
	}), "dana").Return(&entity.SocialContent{
		ID:       1,
		PostDate: entity.NewDate(2026, time.January, 8),
		WeekOf:   entity.NewDate(2026, time.January, 5),
		Platform: entity.PlatformInstagram,
		Status:   entity.StatusDraft,
	}, nil)

	router := setupContentRouter(uc)

	body, _ := json.Marshal(gin.H{
		"post_date": "2026-01-08",
		"platform":  "Instagram",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/content", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]entity.SocialContent
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-01-05", resp["content"].WeekOf.String())
	uc.AssertExpectations(t)
}

func TestCreateContent_MissingPostDate(t *testing.T) {
	uc := new(MockContentUseCase)
	router := setupContentRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/content", bytes.NewReader([]byte(`{"platform":"Instagram"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "CreateContent", mock.Anything, mock.Anything)
}

func TestCreateContent_ZeroPostDateRejectedAtBinding(t *testing.T) {
	uc := new(MockContentUseCase)
	router := setupContentRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/content", bytes.NewReader([]byte(`{"post_date":null,"platform":"Instagram"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "CreateContent", mock.Anything, mock.Anything)
}

func TestListContent_WithFilters(t *testing.T) {
	uc := new(MockContentUseCase)
	uc.On("ListContent", mock.MatchedBy(func(filter entity.ContentFilter) bool {
		return filter.StartDate != nil && filter.StartDate.String() == "2026-01-01" &&
			filter.Status == entity.StatusScheduled
	})).Return([]*entity.SocialContent{{ID: 1}, {ID: 2}}, nil)

	router := setupContentRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/content?startDate=2026-01-01&status=scheduled", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count int `json:"count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestListContent_BadStartDate(t *testing.T) {
	router := setupContentRouter(new(MockContentUseCase))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/content?startDate=January", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetContent_NotFound(t *testing.T) {
	uc := new(MockContentUseCase)
	uc.On("GetContent", int64(99)).Return(nil, usecase.ErrNotFound)

	router := setupContentRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/content/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateContent_InvalidStatus(t *testing.T) {
	uc := new(MockContentUseCase)
	uc.On("UpdateContent", int64(7), mock.Anything, "dana").
		Return(nil, usecase.ErrInvalidInput)

	router := setupContentRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/content/7", bytes.NewReader([]byte(`{"status":"archived"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteContent_Success(t *testing.T) {
	uc := new(MockContentUseCase)
	uc.On("DeleteContent", int64(7)).Return(nil)

	router := setupContentRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/content/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestRepairWeeks_ReportsCount(t *testing.T) {
	uc := new(MockContentUseCase)
	uc.On("RepairWeeks").Return(12, nil)

	router := setupContentRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/fix-weeks", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Updated int `json:"updated"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Updated)
}

func TestDeleteAsset_Success(t *testing.T) {
	uc := new(MockContentUseCase)
	uc.On("DeleteAsset", "a1b2c3.png").Return(nil)

	router := setupContentRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/assets/a1b2c3.png", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestDeleteAsset_StorageFailure(t *testing.T) {
	uc := new(MockContentUseCase)
	uc.On("DeleteAsset", "a1b2c3.png").Return(errors.New("storage unavailable"))

	router := setupContentRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/assets/a1b2c3.png", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
