package usecase

import (
	"testing"
	"time"

	"marketing-hub/internal/entity"
	"marketing-hub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newCommentUseCase(commentRepo *MockCommentRepository, contentRepo *MockContentRepository) CommentUseCase {
	return NewCommentUseCase(commentRepo, contentRepo, nil, logger.New())
}

func TestAddComment_Success(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	contentRepo := new(MockContentRepository)
	contentRepo.On("GetByID", int64(5)).Return(&entity.SocialContent{ID: 5}, nil)
	commentRepo.On("Create", mock.AnythingOfType("*entity.Comment")).Return(nil)

	uc := newCommentUseCase(commentRepo, contentRepo)

	comment, err := uc.AddComment(5, "looks good, ship it", nil, "dana")

	assert.NoError(t, err)
	assert.Equal(t, int64(5), comment.ContentID)
	assert.Equal(t, "dana", comment.AuthorName)
	assert.Nil(t, comment.ParentCommentID)
	commentRepo.AssertExpectations(t)
}

func TestAddComment_EmptyText(t *testing.T) {
	uc := newCommentUseCase(new(MockCommentRepository), new(MockContentRepository))

	_, err := uc.AddComment(5, "   ", nil, "dana")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddComment_ContentMissing(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	contentRepo := new(MockContentRepository)
	contentRepo.On("GetByID", int64(5)).Return(nil, gorm.ErrRecordNotFound)

	uc := newCommentUseCase(commentRepo, contentRepo)

	_, err := uc.AddComment(5, "orphan", nil, "dana")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddComment_ParentMissing(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	contentRepo := new(MockContentRepository)
	contentRepo.On("GetByID", int64(5)).Return(&entity.SocialContent{ID: 5}, nil)
	commentRepo.On("GetByID", int64(42)).Return(nil, gorm.ErrRecordNotFound)

	uc := newCommentUseCase(commentRepo, contentRepo)

	parentID := int64(42)
	_, err := uc.AddComment(5, "reply", &parentID, "dana")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddComment_ParentOnOtherContent(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	contentRepo := new(MockContentRepository)
	contentRepo.On("GetByID", int64(5)).Return(&entity.SocialContent{ID: 5}, nil)
	commentRepo.On("GetByID", int64(42)).Return(&entity.Comment{ID: 42, ContentID: 9}, nil)

	uc := newCommentUseCase(commentRepo, contentRepo)

	parentID := int64(42)
	_, err := uc.AddComment(5, "reply", &parentID, "dana")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListThread_BuildsForest(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	contentRepo := new(MockContentRepository)
	contentRepo.On("GetByID", int64(5)).Return(&entity.SocialContent{ID: 5}, nil)

	parent := int64(1)
	commentRepo.On("ListByContentID", int64(5)).Return([]entity.Comment{
		{ID: 1, ContentID: 5, Text: "first pass done", CreatedAt: time.Now()},
		{ID: 2, ContentID: 5, Text: "caption needs work", ParentCommentID: &parent},
	}, nil)

	uc := newCommentUseCase(commentRepo, contentRepo)

	thread, err := uc.ListThread(5)

	assert.NoError(t, err)
	assert.Len(t, thread, 1)
	assert.Len(t, thread[0].Replies, 1)
	assert.Equal(t, int64(2), thread[0].Replies[0].ID)
}

func TestUpdateComment_ResolveOnly(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	commentRepo.On("UpdateFields", int64(3), mock.MatchedBy(func(fields map[string]interface{}) bool {
		resolved, ok := fields["resolved"].(bool)
		_, hasText := fields["comment_text"]
		return ok && resolved && !hasText
	})).Return(&entity.Comment{ID: 3, Resolved: true}, nil)

	uc := newCommentUseCase(commentRepo, new(MockContentRepository))

	resolved := true
	comment, err := uc.UpdateComment(3, nil, &resolved)

	assert.NoError(t, err)
	assert.True(t, comment.Resolved)
	commentRepo.AssertExpectations(t)
}

func TestDeleteComment_NotFound(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	commentRepo.On("Delete", int64(404)).Return(gorm.ErrRecordNotFound)

	uc := newCommentUseCase(commentRepo, new(MockContentRepository))

	assert.ErrorIs(t, uc.DeleteComment(404), ErrNotFound)
}
