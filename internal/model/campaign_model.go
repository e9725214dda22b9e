package model

import (
	"time"

	"marketing-hub/internal/entity"
)

type CampaignModel struct {
	ID           int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string      `gorm:"type:varchar(255);not null;index:idx_campaigns_name_send_date" json:"name"`
	SendDate     entity.Date `gorm:"type:date;not null;index:idx_campaigns_name_send_date" json:"send_date"`
	Delivered    int         `gorm:"not null;default:0" json:"delivered"`
	Opened       float64     `gorm:"type:decimal(5,2);not null;default:0" json:"opened"`
	Clicked      float64     `gorm:"type:decimal(5,2);not null;default:0" json:"clicked"`
	Bounce       int         `gorm:"not null;default:0" json:"bounce"`
	Unsubscribed int         `gorm:"not null;default:0" json:"unsubscribed"`
	Spam         int         `gorm:"not null;default:0" json:"spam"`
	RawOpens     *int        `json:"raw_opens"`
	RawClicks    *int        `json:"raw_clicks"`
	ABSubjectA   string      `gorm:"column:ab_subject_a;type:text" json:"ab_subject_a"`
	ABSubjectB   string      `gorm:"column:ab_subject_b;type:text" json:"ab_subject_b"`
	ABWinner     string      `gorm:"column:ab_winner;type:varchar(1)" json:"ab_winner"`
	ABOpenedA    *float64    `gorm:"column:ab_opened_a;type:decimal(5,2)" json:"ab_opened_a"`
	ABOpenedB    *float64    `gorm:"column:ab_opened_b;type:decimal(5,2)" json:"ab_opened_b"`
	ABClickedA   *float64    `gorm:"column:ab_clicked_a;type:decimal(5,2)" json:"ab_clicked_a"`
	ABClickedB   *float64    `gorm:"column:ab_clicked_b;type:decimal(5,2)" json:"ab_clicked_b"`
	ABOpensA     *int        `gorm:"column:ab_opens_a" json:"ab_opens_a"`
	ABOpensB     *int        `gorm:"column:ab_opens_b" json:"ab_opens_b"`
	Notes        string      `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (CampaignModel) TableName() string {
	return "campaigns"
}
