package usecase

import (
	"testing"
	"time"

	"marketing-hub/internal/entity"
	"marketing-hub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBlogUseCase(repo *MockBlogPostRepository) BlogUseCase {
	return NewBlogUseCase(repo, logger.New())
}

func TestCreateBlogPost_WednesdayAccepted(t *testing.T) {
	repo := new(MockBlogPostRepository)
	repo.On("Create", mock.AnythingOfType("*entity.BlogPost")).Return(nil)

	uc := newBlogUseCase(repo)

	// 2026-01-07 is a Wednesday.
	post, err := uc.CreateBlogPost(CreateBlogPostInput{
		Title:       "Q1 planning recap",
		PublishDate: entity.NewDate(2026, time.January, 7),
	}, "dana")

	assert.NoError(t, err)
	assert.Equal(t, entity.BlogStatusDraft, post.Status)
	assert.Equal(t, "dana", post.Author)
	repo.AssertExpectations(t)
}

func TestCreateBlogPost_NonWednesdayRejected(t *testing.T) {
	uc := newBlogUseCase(new(MockBlogPostRepository))

	_, err := uc.CreateBlogPost(CreateBlogPostInput{
		Title:       "off schedule",
		PublishDate: entity.NewDate(2026, time.January, 8),
	}, "dana")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBlogPost_ExplicitAuthorWins(t *testing.T) {
	repo := new(MockBlogPostRepository)
	repo.On("Create", mock.AnythingOfType("*entity.BlogPost")).Return(nil)

	uc := newBlogUseCase(repo)

	post, err := uc.CreateBlogPost(CreateBlogPostInput{
		Title:       "guest column",
		Author:      "jordan",
		PublishDate: entity.NewDate(2026, time.January, 7),
	}, "dana")

	assert.NoError(t, err)
	assert.Equal(t, "jordan", post.Author)
}

func TestCreateBlogPost_MissingTitle(t *testing.T) {
	uc := newBlogUseCase(new(MockBlogPostRepository))

	_, err := uc.CreateBlogPost(CreateBlogPostInput{
		PublishDate: entity.NewDate(2026, time.January, 7),
	}, "dana")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBlogPost_DateChangeRevalidated(t *testing.T) {
	uc := newBlogUseCase(new(MockBlogPostRepository))

	thursday := entity.NewDate(2026, time.January, 8)
	_, err := uc.UpdateBlogPost(1, UpdateBlogPostInput{PublishDate: &thursday})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBlogPost_StatusTransition(t *testing.T) {
	repo := new(MockBlogPostRepository)
	repo.On("UpdateFields", int64(1), mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["status"] == "published"
	})).Return(&entity.BlogPost{ID: 1, Status: entity.BlogStatusPublished}, nil)

	uc := newBlogUseCase(repo)

	status := "published"
	post, err := uc.UpdateBlogPost(1, UpdateBlogPostInput{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, entity.BlogStatusPublished, post.Status)
}
