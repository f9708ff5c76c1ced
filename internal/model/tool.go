package model

import (
	"MarketMind/internal/pkg/consts"
	"time"
)

type Tool struct {
	ID          uint64    `gorm:"primaryKey"`
	OwnerID     uint64    `gorm:"not null;index:idx_owner_id" json:"owner_id"`
	CategoryID  uint64    `gorm:"index:idx_category_id" json:"category_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex:uk_tool_slug" json:"slug"`
	Tagline     string    `gorm:"type:varchar(255)" json:"tagline"`
	Description string    `gorm:"type:text" json:"description"`
	WebsiteURL  string    `gorm:"type:varchar(500)" json:"website_url"`
	Pricing     string    `gorm:"type:varchar(50)" json:"pricing"` // free / freemium / paid
	IsActive    bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_active"`
	IsFeatured  bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_featured"`
	ViewCount   int64     `gorm:"not null;default:0" json:"view_count"`
	LikeCount   int64     `gorm:"not null;default:0" json:"like_count"`
	RatingSum   int64     `gorm:"not null;default:0" json:"-"`
	ReviewCount int64     `gorm:"not null;default:0" json:"review_count"`
	Rating      float64   `gorm:"not null;default:0" json:"rating"`
	SeoTitle    string    `gorm:"type:varchar(255)" json:"seo_title"`
	SeoDesc     string    `gorm:"type:varchar(500)" json:"seo_description"`
	SeoKeywords string    `gorm:"type:varchar(500)" json:"seo_keywords"`
	JsonLD      string    `gorm:"type:text" json:"json_ld"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner    User     `gorm:"foreignKey:OwnerID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

func (Tool) TableName() string {
	return "tools"
}

func (t *Tool) Kind() string {
	return consts.ContentKindTool
}

func (t *Tool) ContentID() uint64 {
	return t.ID
}

func (t *Tool) IsVisible() bool {
	return t.IsActive
}
