package model

import (
	"time"
)

type Bookmark struct {
	UserID      uint64    `gorm:"primaryKey" json:"user_id"`
	ContentKind string    `gorm:"primaryKey;type:varchar(16)" json:"content_kind"`
	ContentID   uint64    `gorm:"primaryKey;index:idx_bookmark_content" json:"content_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
