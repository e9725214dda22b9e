package entity

import "time"

type ContentType string

const (
	ContentTypePost  ContentType = "Post"
	ContentTypeReel  ContentType = "Reel"
	ContentTypeStory ContentType = "Story"
)

type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformLinkedIn  Platform = "LinkedIn"
)

type ContentStatus string

// Pipeline order, earliest to latest.
const (
	StatusDraft            ContentStatus = "draft"
	StatusPaused           ContentStatus = "paused"
	StatusReadyForApproval ContentStatus = "ready_for_approval"
	StatusNeedsEdits       ContentStatus = "needs_edits"
	StatusApproved         ContentStatus = "approved"
	StatusScheduled        ContentStatus = "scheduled"
	StatusPosted           ContentStatus = "posted"
)

func (s ContentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPaused, StatusReadyForApproval, StatusNeedsEdits,
		StatusApproved, StatusScheduled, StatusPosted:
		return true
	}
	return false
}

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypePost, ContentTypeReel, ContentTypeStory:
		return true
	}
	return false
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformLinkedIn:
		return true
	}
	return false
}

// SocialContent is one planned social post on the content calendar. WeekOf is
// always derived from PostDate by WeekOf; stored drift is repaired by the
// fix-weeks admin operation.
type SocialContent struct {
	ID           int64         `json:"id"`
	PostDate     Date          `json:"post_date"`
	WeekOf       Date          `json:"week_of"`
	ContentType  ContentType   `json:"content_type"`
	Platform     Platform      `json:"platform"`
	ContentNeeds string        `json:"content_needs,omitempty"`
	AssetLink    string        `json:"asset_link,omitempty"`
	Caption      string        `json:"caption,omitempty"`
	Status       ContentStatus `json:"status"`
	AssignedTo   string        `json:"assigned_to,omitempty"`
	CreatedBy    string        `json:"created_by,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ContentFilter narrows content reads. Zero values mean "no filter".
type ContentFilter struct {
	StartDate *Date
	EndDate   *Date
	Status    ContentStatus
	Platform  Platform
}
