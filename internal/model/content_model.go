package model

import (
	"time"

	"marketing-hub/internal/entity"
)

type SocialContentModel struct {
	ID           int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	PostDate     entity.Date   `gorm:"type:date;not null;index" json:"post_date"`
	WeekOf       entity.Date   `gorm:"type:date;not null;index" json:"week_of"`
	ContentType  string        `gorm:"type:varchar(20)" json:"content_type"`
	Platform     string        `gorm:"type:varchar(20);index" json:"platform"`
	ContentNeeds string        `gorm:"type:text" json:"content_needs"`
	AssetLink    string        `gorm:"type:text" json:"asset_link"`
	Caption      string        `gorm:"type:text" json:"caption"`
	Status       string        `gorm:"type:varchar(50);default:'draft';index" json:"status"`
	AssignedTo   string        `gorm:"type:varchar(100)" json:"assigned_to"`
	CreatedBy    string        `gorm:"type:varchar(100)" json:"created_by"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Comments     []CommentModel `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SocialContentModel) TableName() string {
	return "social_content"
}

type CommentModel struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentID       int64       `gorm:"not null;index" json:"content_id"`
	AuthorName      string      `gorm:"type:varchar(100)" json:"author_name"`
	CommentText     string      `gorm:"type:text;not null" json:"comment_text"`
	Resolved        bool        `gorm:"default:false" json:"resolved"`
	ParentCommentID *int64      `gorm:"index" json:"parent_comment_id"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (CommentModel) TableName() string {
	return "content_comments"
}
