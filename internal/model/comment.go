package model

import (
	"time"
)

type Comment struct {
	ID          uint64    `gorm:"primaryKey"`
	ContentKind string    `gorm:"type:varchar(16);not null;index:idx_comment_content" json:"content_kind"`
	ContentID   uint64    `gorm:"not null;index:idx_comment_content" json:"content_id"`
	UserID      uint64    `gorm:"not null;index:idx_comment_user" json:"user_id"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	CreatedAt   time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}
