package entity

import "time"

type BlogStatus string

const (
	BlogStatusDraft      BlogStatus = "draft"
	BlogStatusInProgress BlogStatus = "in_progress"
	BlogStatusPublished  BlogStatus = "published"
)

func (s BlogStatus) Valid() bool {
	switch s {
	case BlogStatusDraft, BlogStatusInProgress, BlogStatusPublished:
		return true
	}
	return false
}

// BlogPost is one entry on the Wednesday publishing schedule.
type BlogPost struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Topic       string     `json:"topic,omitempty"`
	Author      string     `json:"author"`
	PublishDate Date       `json:"publish_date"`
	Link        string     `json:"link,omitempty"`
	Status      BlogStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
