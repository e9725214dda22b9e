package main

import (
	"fmt"
	"time"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/model"
	"marketing-hub/pkg/config"
	"marketing-hub/pkg/database"
	"marketing-hub/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.Model(&model.CampaignModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check campaigns: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded, skipping")
		return nil
	}

	if err := seedCampaigns(db); err != nil {
		return err
	}
	if err := seedBlogPosts(db); err != nil {
		return err
	}
	if err := seedContent(db); err != nil {
		return err
	}
	return nil
}

func seedCampaigns(db *gorm.DB) error {
	abOpenedA, abOpenedB := 11.0, 10.0
	abClickedA, abClickedB := 1.0, 0.0

	campaigns := []model.CampaignModel{
		{
			Name:         "Mindset",
			SendDate:     entity.NewDate(2026, time.January, 7),
			Delivered:    566,
			Opened:       8.48,
			Clicked:      0.35,
			Bounce:       4,
			Unsubscribed: 3,
		},
		{
			Name:      "Oops Substack",
			SendDate:  entity.NewDate(2026, time.January, 11),
			Delivered: 205,
			Opened:    8.29,
			Clicked:   0.49,
			Bounce:    2,
		},
		{
			Name:         "Freedom Number A/B",
			SendDate:     entity.NewDate(2026, time.January, 15),
			Delivered:    636,
			Opened:       8.49,
			Clicked:      0.16,
			Unsubscribed: 1,
			ABSubjectA:   "The Mistake That Nearly Killed Her Business Before It Even Launched",
			ABSubjectB:   "Nine Months In, And She Had No Idea What Her Business Needed to Survive",
			ABWinner:     "A",
			ABOpenedA:    &abOpenedA,
			ABOpenedB:    &abOpenedB,
			ABClickedA:   &abClickedA,
			ABClickedB:   &abClickedB,
			Notes:        "Jan 19 email will include ONLY Newsletter subscribers who have interacted with the email the past 30 days, it will be a drastically smaller list.",
		},
		{
			Name:     "Pipeline",
			SendDate: entity.NewDate(2026, time.January, 21),
			Notes:    "Pending",
		},
	}

	if err := db.Create(&campaigns).Error; err != nil {
		return fmt.Errorf("failed to seed campaigns: %w", err)
	}
	return nil
}

func seedBlogPosts(db *gorm.DB) error {
	// Publish dates land on Wednesdays to match the schedule rule.
	posts := []model.BlogPostModel{
		{
			Title:       "The Mistake That Nearly Killed Her Business",
			Topic:       "Founder stories",
			Author:      "Beth",
			PublishDate: entity.NewDate(2026, time.January, 7),
			Status:      string(entity.BlogStatusPublished),
		},
		{
			Title:       "What Your Freedom Number Actually Means",
			Topic:       "Finance",
			Author:      "Beth",
			PublishDate: entity.NewDate(2026, time.January, 14),
			Status:      string(entity.BlogStatusInProgress),
		},
		{
			Title:       "Building a Pipeline That Works While You Sleep",
			Topic:       "Sales",
			Author:      "Beth",
			PublishDate: entity.NewDate(2026, time.January, 21),
			Status:      string(entity.BlogStatusDraft),
		},
	}

	if err := db.Create(&posts).Error; err != nil {
		return fmt.Errorf("failed to seed blog posts: %w", err)
	}
	return nil
}

func seedContent(db *gorm.DB) error {
	items := []model.SocialContentModel{
		{
			PostDate:     entity.NewDate(2026, time.January, 6),
			WeekOf:       entity.NewDate(2026, time.January, 5),
			ContentType:  string(entity.ContentTypePost),
			Platform:     string(entity.PlatformInstagram),
			ContentNeeds: "Quote card from the Mindset newsletter",
			Caption:      "Your mindset is the first system you build.",
			Status:       string(entity.StatusPosted),
			AssignedTo:   "Beth",
			CreatedBy:    "seed",
		},
		{
			PostDate:     entity.NewDate(2026, time.January, 8),
			WeekOf:       entity.NewDate(2026, time.January, 5),
			ContentType:  string(entity.ContentTypeReel),
			Platform:     string(entity.PlatformLinkedIn),
			ContentNeeds: "60s clip from the founder interview",
			Status:       string(entity.StatusScheduled),
			AssignedTo:   "Beth",
			CreatedBy:    "seed",
		},
		{
			PostDate:    entity.NewDate(2026, time.January, 13),
			WeekOf:      entity.NewDate(2026, time.January, 12),
			ContentType: string(entity.ContentTypeStory),
			Platform:    string(entity.PlatformInstagram),
			Caption:     "5 numbers every founder should know",
			Status:      string(entity.StatusDraft),
			CreatedBy:   "seed",
		},
	}

	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed content: %w", err)
	}
	return nil
}
