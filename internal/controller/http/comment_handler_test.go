package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/usecase"
	"marketing-hub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) AddComment(contentID int64, text string, parentID *int64, actor string) (*entity.Comment, error) {
	args := m.Called(contentID, text, parentID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) ListThread(contentID int64) ([]*entity.CommentThread, error) {
	args := m.Called(contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CommentThread), args.Error(1)
}

func (m *MockCommentUseCase) UpdateComment(id int64, text *string, resolved *bool) (*entity.Comment, error) {
	args := m.Called(id, text, resolved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func setupCommentRouter(uc usecase.CommentUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCommentHandler(uc, logger.New())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("actor", "dana")
		c.Next()
	})
	router.POST("/content/:id/comments", handler.CreateComment)
	router.GET("/content/:id/comments", handler.ListComments)
	router.PUT("/comments/:id", handler.UpdateComment)
	router.DELETE("/comments/:id", handler.DeleteComment)
	return router
}

func TestCreateComment_Success(t *testing.T) {
	uc := new(MockCommentUseCase)
	uc.On("AddComment", int64(5), "Swap the hero image", (*int64)(nil), "dana").
		Return(&entity.Comment{ID: 1, ContentID: 5, Text: "Swap the hero image", AuthorName: "dana"}, nil)

	router := setupCommentRouter(uc)

	body, _ := json.Marshal(gin.H{"comment_text": "Swap the hero image"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/content/5/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	uc.AssertExpectations(t)
}

func TestCreateComment_Reply(t *testing.T) {
	uc := new(MockCommentUseCase)
	uc.On("AddComment", int64(5), "Done", mock.MatchedBy(func(parent *int64) bool {
		return parent != nil && *parent == 3
	}), "dana").Return(&entity.Comment{ID: 2, ContentID: 5}, nil)

	router := setupCommentRouter(uc)

	body, _ := json.Marshal(gin.H{"comment_text": "Done", "parent_comment_id": 3})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/content/5/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	uc.AssertExpectations(t)
}

func TestCreateComment_MissingText(t *testing.T) {
	router := setupCommentRouter(new(MockCommentUseCase))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/content/5/comments", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateComment_ContentMissing(t *testing.T) {
	uc := new(MockCommentUseCase)
	uc.On("AddComment", int64(99), "hello", (*int64)(nil), "dana").Return(nil, usecase.ErrNotFound)

	router := setupCommentRouter(uc)

	body, _ := json.Marshal(gin.H{"comment_text": "hello"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/content/99/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListComments_ReturnsThread(t *testing.T) {
	uc := new(MockCommentUseCase)
	uc.On("ListThread", int64(5)).Return([]*entity.CommentThread{
		{
			Comment: entity.Comment{ID: 1, ContentID: 5, Text: "root"},
			Replies: []*entity.CommentThread{
				{Comment: entity.Comment{ID: 2, ContentID: 5, Text: "reply"}},
			},
		},
	}, nil)

	router := setupCommentRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/content/5/comments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Comments []struct {
			CommentText string `json:"comment_text"`
			Replies     []struct {
				CommentText string `json:"comment_text"`
			} `json:"replies"`
		} `json:"comments"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Comments, 1)
	assert.Len(t, resp.Comments[0].Replies, 1)
	assert.Equal(t, "reply", resp.Comments[0].Replies[0].CommentText)
}

func TestUpdateComment_Resolve(t *testing.T) {
	uc := new(MockCommentUseCase)
	uc.On("UpdateComment", int64(7), (*string)(nil), mock.MatchedBy(func(resolved *bool) bool {
		return resolved != nil && *resolved
	})).Return(&entity.Comment{ID: 7, Resolved: true}, nil)

	router := setupCommentRouter(uc)

	body, _ := json.Marshal(gin.H{"resolved": true})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/comments/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestDeleteComment_NotFound(t *testing.T) {
	uc := new(MockCommentUseCase)
	uc.On("DeleteComment", int64(42)).Return(usecase.ErrNotFound)

	router := setupCommentRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/comments/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
