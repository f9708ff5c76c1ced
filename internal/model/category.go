package model

import (
	"MarketMind/internal/pkg/consts"
	"time"
)

type Category struct {
	ID          uint64    `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(100);not null;uniqueIndex:uk_category_slug" json:"slug"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	IsActive    bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) Kind() string {
	return consts.ContentKindCategory
}

func (c *Category) ContentID() uint64 {
	return c.ID
}

func (c *Category) IsVisible() bool {
	return c.IsActive
}
