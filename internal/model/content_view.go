package model

import (
	"time"
)

// ContentView 单次浏览明细，来自埋点事件流，UserID 为 0 表示匿名
type ContentView struct {
	ID          uint64    `gorm:"primaryKey"`
	ContentKind string    `gorm:"type:varchar(16);not null;index:idx_view_content" json:"content_kind"`
	ContentID   uint64    `gorm:"not null;index:idx_view_content" json:"content_id"`
	UserID      uint64    `gorm:"not null;default:0" json:"user_id"`
	ViewedAt    time.Time `json:"viewed_at"`
}

func (ContentView) TableName() string {
	return "content_views"
}
