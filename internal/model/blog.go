package model

import (
	"MarketMind/internal/pkg/consts"
	"time"
)

type Blog struct {
	ID          uint64     `gorm:"primaryKey"`
	AuthorID    uint64     `gorm:"not null;index:idx_author_id" json:"author_id"`
	CategoryID  uint64     `gorm:"index:idx_category_id" json:"category_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(255);not null;uniqueIndex:uk_blog_slug" json:"slug"`
	Excerpt     string     `gorm:"type:varchar(500)" json:"excerpt"`
	Content     string     `gorm:"type:longtext" json:"content"`
	Status      int8       `gorm:"not null;default:0" json:"status"` // 0:草稿, 1:已发布, 2:已归档
	ReadingTime int        `gorm:"not null;default:1" json:"reading_time"`
	ViewCount   int64      `gorm:"not null;default:0" json:"view_count"`
	LikeCount   int64      `gorm:"not null;default:0" json:"like_count"`
	RatingSum   int64      `gorm:"not null;default:0" json:"-"`
	ReviewCount int64      `gorm:"not null;default:0" json:"review_count"`
	Rating      float64    `gorm:"not null;default:0" json:"rating"`
	SeoTitle    string     `gorm:"type:varchar(255)" json:"seo_title"`
	SeoDesc     string     `gorm:"type:varchar(500)" json:"seo_description"`
	SeoKeywords string     `gorm:"type:varchar(500)" json:"seo_keywords"` // 逗号分隔
	JsonLD      string     `gorm:"type:text" json:"json_ld"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// 关联关系
	Author   User     `gorm:"foreignKey:AuthorID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

func (Blog) TableName() string {
	return "blogs"
}

func (b *Blog) Kind() string {
	return consts.ContentKindBlog
}

func (b *Blog) ContentID() uint64 {
	return b.ID
}

func (b *Blog) IsVisible() bool {
	return b.Status == consts.BlogStatusPublished
}
