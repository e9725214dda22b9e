package model

import (
	"time"

	"marketing-hub/internal/entity"
)

type BlogPostModel struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string      `gorm:"type:text;not null" json:"title"`
	Topic       string      `gorm:"type:varchar(255)" json:"topic"`
	Author      string      `gorm:"type:varchar(100)" json:"author"`
	PublishDate entity.Date `gorm:"type:date;not null;index" json:"publish_date"`
	Link        string      `gorm:"type:text" json:"link"`
	Status      string      `gorm:"type:varchar(50);default:'draft'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}
