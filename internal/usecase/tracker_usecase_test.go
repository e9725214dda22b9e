package usecase

import (
	"errors"
	"testing"
	"time"

	"marketing-hub/internal/entity"
	"marketing-hub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTrackerUseCase(contentRepo *MockContentRepository, blogRepo *MockBlogPostRepository, now time.Time) TrackerUseCase {
	uc := NewTrackerUseCase(contentRepo, blogRepo, logger.New()).(*trackerUseCase)
	uc.now = func() time.Time { return now }
	return uc
}

func TestSnapshot_RollsUpWeeks(t *testing.T) {
	contentRepo := new(MockContentRepository)
	blogRepo := new(MockBlogPostRepository)

	// Thursday 2026-01-08: the window starts at Monday 2026-01-05.
	now := time.Date(2026, time.January, 8, 10, 0, 0, 0, time.UTC)
	week1 := entity.NewDate(2026, time.January, 5)
	week2 := entity.NewDate(2026, time.January, 12)

	post := &entity.BlogPost{ID: 3, Title: "year kickoff", PublishDate: entity.NewDate(2025, time.December, 31)}
	blogRepo.On("LatestInRange", week1.AddWeeks(-1), week1).Return(post, nil)
	blogRepo.On("LatestInRange", week2.AddWeeks(-1), week2).Return(nil, nil)

	contentRepo.On("LinkedInWeekStats", week1, "Beth").Return(3, 1, nil)
	contentRepo.On("LinkedInWeekStats", week2, "Beth").Return(2, 0, nil)
	contentRepo.On("SocialWeekStats", week1).Return(&entity.SocialLane{Total: 5, Posted: 2, Draft: 3}, nil)
	contentRepo.On("SocialWeekStats", week2).Return(&entity.SocialLane{Total: 4, Scheduled: 1, Draft: 3}, nil)

	uc := newTrackerUseCase(contentRepo, blogRepo, now)

	rollups, err := uc.Snapshot(2, "")

	assert.NoError(t, err)
	assert.Len(t, rollups, 2)

	assert.Equal(t, week1, rollups[0].WeekOf)
	assert.Equal(t, post, rollups[0].BlogPost)
	assert.Equal(t, entity.LaneStatusPosted, rollups[0].LinkedIn.Status)
	assert.Equal(t, entity.LaneStatusPosted, rollups[0].SocialMedia.Status)

	assert.Equal(t, week2, rollups[1].WeekOf)
	assert.Nil(t, rollups[1].BlogPost)
	assert.Equal(t, entity.LaneStatusPlanned, rollups[1].LinkedIn.Status)
	assert.Equal(t, entity.LaneStatusScheduled, rollups[1].SocialMedia.Status)
}

func TestSnapshot_FailedWeekIsIsolated(t *testing.T) {
	contentRepo := new(MockContentRepository)
	blogRepo := new(MockBlogPostRepository)

	now := time.Date(2026, time.January, 8, 10, 0, 0, 0, time.UTC)
	week1 := entity.NewDate(2026, time.January, 5)
	week2 := entity.NewDate(2026, time.January, 12)

	blogRepo.On("LatestInRange", week1.AddWeeks(-1), week1).Return(nil, errors.New("connection reset"))
	blogRepo.On("LatestInRange", week2.AddWeeks(-1), week2).Return(nil, nil)
	contentRepo.On("LinkedInWeekStats", week2, "Beth").Return(0, 0, nil)
	contentRepo.On("SocialWeekStats", week2).Return(&entity.SocialLane{}, nil)

	uc := newTrackerUseCase(contentRepo, blogRepo, now)

	rollups, err := uc.Snapshot(2, "")

	assert.NoError(t, err)
	assert.Len(t, rollups, 2)

	assert.Equal(t, "connection reset", rollups[0].Error)
	assert.Equal(t, entity.LaneStatusNone, rollups[0].LinkedIn.Status)
	assert.Empty(t, rollups[1].Error)
}

func TestSnapshot_AssigneeOverride(t *testing.T) {
	contentRepo := new(MockContentRepository)
	blogRepo := new(MockBlogPostRepository)

	now := time.Date(2026, time.January, 8, 10, 0, 0, 0, time.UTC)
	week1 := entity.NewDate(2026, time.January, 5)

	blogRepo.On("LatestInRange", mock.Anything, mock.Anything).Return(nil, nil)
	contentRepo.On("LinkedInWeekStats", week1, "jordan").Return(1, 0, nil)
	contentRepo.On("SocialWeekStats", week1).Return(&entity.SocialLane{}, nil)

	uc := newTrackerUseCase(contentRepo, blogRepo, now)

	rollups, err := uc.Snapshot(1, "jordan")

	assert.NoError(t, err)
	assert.Equal(t, entity.LaneStatusPlanned, rollups[0].LinkedIn.Status)
	contentRepo.AssertCalled(t, "LinkedInWeekStats", week1, "jordan")
}

func TestSnapshot_DefaultWeekCount(t *testing.T) {
	contentRepo := new(MockContentRepository)
	blogRepo := new(MockBlogPostRepository)

	now := time.Date(2026, time.January, 8, 10, 0, 0, 0, time.UTC)
	blogRepo.On("LatestInRange", mock.Anything, mock.Anything).Return(nil, nil)
	contentRepo.On("LinkedInWeekStats", mock.Anything, "Beth").Return(0, 0, nil)
	contentRepo.On("SocialWeekStats", mock.Anything).Return(&entity.SocialLane{}, nil)

	uc := newTrackerUseCase(contentRepo, blogRepo, now)

	rollups, err := uc.Snapshot(0, "")

	assert.NoError(t, err)
	assert.Len(t, rollups, 8)
}
