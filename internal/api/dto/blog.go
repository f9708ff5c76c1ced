package dto

// BlogBaseDTO 博客 - 新增
type BlogBaseDTO struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Content     string `json:"content" binding:"required,min=1"`
	Excerpt     string `json:"excerpt" binding:"omitempty,max=500"`
	CategoryID  uint64 `json:"category_id" binding:"omitempty"`
	SeoTitle    string `json:"seo_title" binding:"omitempty,max=255"`
	SeoDesc     string `json:"seo_desc" binding:"omitempty,max=500"`
	SeoKeywords string `json:"seo_keywords" binding:"omitempty,max=255"`
}

// BlogUpdateDTO 博客 - 修改，nil 字段表示不变
type BlogUpdateDTO struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Content     *string `json:"content" binding:"omitempty,min=1"`
	Excerpt     *string `json:"excerpt" binding:"omitempty,max=500"`
	CategoryID  *uint64 `json:"category_id"`
	SeoTitle    *string `json:"seo_title" binding:"omitempty,max=255"`
	SeoDesc     *string `json:"seo_desc" binding:"omitempty,max=500"`
	SeoKeywords *string `json:"seo_keywords" binding:"omitempty,max=255"`
}

// BlogDTO 博客 - 详情
type BlogDTO struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Content     string  `json:"content"`
	Excerpt     string  `json:"excerpt"`
	Status      int8    `json:"status"`
	ReadingTime int     `json:"reading_time"`
	ViewCount   int64   `json:"view_count"`
	LikeCount   int64   `json:"like_count"`
	ReviewCount int64   `json:"review_count"`
	Rating      float64 `json:"rating"`
	SeoTitle    string  `json:"seo_title"`
	SeoDesc     string  `json:"seo_desc"`
	SeoKeywords string  `json:"seo_keywords"`
	JsonLD      string  `json:"json_ld,omitempty"`
	PublishedAt string  `json:"published_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`

	// Author
	AuthorID       uint64 `json:"author_id"`
	AuthorNickname string `json:"author_nickname"`

	// Category
	CategoryID   uint64 `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// BlogListDTO 博客 - 列表
type BlogListDTO struct {
	List    []*BlogDTO `json:"list"`
	HasMore bool       `json:"has_more"`
}

// BlogQueryDTO 博客 - 列表查询
type BlogQueryDTO struct {
	PageDTO
	CategoryID uint64 `form:"category_id"`
}

// SeoReportDTO 博客 / 工具 - SEO 评估
type SeoReportDTO struct {
	Overall         int            `json:"overall"`
	Breakdown       map[string]int `json:"breakdown"`
	Recommendations []string       `json:"recommendations"`
	ReadingTime     int            `json:"reading_time,omitempty"`
	JsonLD          string         `json:"json_ld"`
}
