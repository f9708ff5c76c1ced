package model

import (
	"time"
)

// Like 以 (user, kind, content) 为主键，天然保证同一用户同一内容至多一个赞
type Like struct {
	UserID      uint64    `gorm:"primaryKey" json:"user_id"`
	ContentKind string    `gorm:"primaryKey;type:varchar(16)" json:"content_kind"`
	ContentID   uint64    `gorm:"primaryKey;index:idx_like_content" json:"content_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
