package model

import (
	"time"
)

type Review struct {
	ID          uint64    `gorm:"primaryKey"`
	ContentKind string    `gorm:"type:varchar(16);not null;index:idx_review_content" json:"content_kind"`
	ContentID   uint64    `gorm:"not null;index:idx_review_content" json:"content_id"`
	UserID      uint64    `gorm:"not null;index:idx_review_user" json:"user_id"`
	Rating      int       `gorm:"not null" json:"rating"` // 1-5
	Body        string    `gorm:"type:text" json:"body"`
	CreatedAt   time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Review) TableName() string {
	return "reviews"
}
