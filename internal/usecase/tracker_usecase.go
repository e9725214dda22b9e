package usecase

import (
	"sync"
	"time"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/repo/persistent"
	"marketing-hub/pkg/logger"
)

const (
	defaultTrackerWeeks = 8
	maxTrackerWeeks     = 52
	defaultAssignee     = "Beth"
)

type TrackerUseCase interface {
	Snapshot(weeks int, assignee string) ([]entity.WeekRollup, error)
}

type trackerUseCase struct {
	contentRepo persistent.ContentRepository
	blogRepo    persistent.BlogPostRepository
	logger      *logger.Logger
	now         func() time.Time
}

func NewTrackerUseCase(
	contentRepo persistent.ContentRepository,
	blogRepo persistent.BlogPostRepository,
	logger *logger.Logger,
) TrackerUseCase {
	return &trackerUseCase{
		contentRepo: contentRepo,
		blogRepo:    blogRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Snapshot rolls up the next `weeks` Mondays starting at the current week.
// Weeks are built independently: a failed week degrades to empty lanes with
// an error note while the rest of the snapshot stays intact.
func (uc *trackerUseCase) Snapshot(weeks int, assignee string) ([]entity.WeekRollup, error) {
	if weeks <= 0 {
		weeks = defaultTrackerWeeks
	}
	if weeks > maxTrackerWeeks {
		weeks = maxTrackerWeeks
	}
	if assignee == "" {
		assignee = defaultAssignee
	}

	mondays := entity.WeeksWindow(entity.DateOf(uc.now()), weeks)
	rollups := make([]entity.WeekRollup, len(mondays))

	var wg sync.WaitGroup
	for i, monday := range mondays {
		wg.Add(1)
		go func(i int, monday entity.Date) {
			defer wg.Done()
			rollups[i] = uc.buildWeek(monday, assignee)
		}(i, monday)
	}
	wg.Wait()

	return rollups, nil
}

func (uc *trackerUseCase) buildWeek(monday entity.Date, assignee string) entity.WeekRollup {
	// Blogs publish midweek, so the post that belongs to this row went out
	// during the previous week.
	prevMonday := monday.AddWeeks(-1)
	blogPost, err := uc.blogRepo.LatestInRange(prevMonday, monday)
	if err != nil {
		uc.logger.Warn("tracker: blog lookup failed for week %s: %v", monday, err)
		return entity.EmptyWeekRollup(monday, err.Error())
	}

	count, postedCount, err := uc.contentRepo.LinkedInWeekStats(monday, assignee)
	if err != nil {
		uc.logger.Warn("tracker: linkedin stats failed for week %s: %v", monday, err)
		return entity.EmptyWeekRollup(monday, err.Error())
	}

	social, err := uc.contentRepo.SocialWeekStats(monday)
	if err != nil {
		uc.logger.Warn("tracker: social stats failed for week %s: %v", monday, err)
		return entity.EmptyWeekRollup(monday, err.Error())
	}
	social.Status = social.DeriveSocialStatus()

	return entity.WeekRollup{
		WeekOf:   monday,
		BlogPost: blogPost,
		LinkedIn: entity.LinkedInLane{
			Count:       count,
			PostedCount: postedCount,
			Status:      entity.DeriveLinkedInStatus(count, postedCount),
		},
		SocialMedia: *social,
	}
}
