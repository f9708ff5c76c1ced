package dto

// ToolBaseDTO 工具 - 新增
type ToolBaseDTO struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Tagline     string `json:"tagline" binding:"omitempty,max=255"`
	Description string `json:"description" binding:"required,min=1"`
	WebsiteURL  string `json:"website_url" binding:"required,url,max=512"`
	Pricing     string `json:"pricing" binding:"omitempty,max=50"`
	CategoryID  uint64 `json:"category_id" binding:"omitempty"`
	SeoTitle    string `json:"seo_title" binding:"omitempty,max=255"`
	SeoDesc     string `json:"seo_desc" binding:"omitempty,max=500"`
	SeoKeywords string `json:"seo_keywords" binding:"omitempty,max=255"`
}

// ToolUpdateDTO 工具 - 修改，nil 字段表示不变
type ToolUpdateDTO struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Tagline     *string `json:"tagline" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	WebsiteURL  *string `json:"website_url" binding:"omitempty,url,max=512"`
	Pricing     *string `json:"pricing" binding:"omitempty,max=50"`
	CategoryID  *uint64 `json:"category_id"`
	SeoTitle    *string `json:"seo_title" binding:"omitempty,max=255"`
	SeoDesc     *string `json:"seo_desc" binding:"omitempty,max=500"`
	SeoKeywords *string `json:"seo_keywords" binding:"omitempty,max=255"`
}

// ToolDTO 工具 - 详情
type ToolDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Tagline     string  `json:"tagline"`
	Description string  `json:"description"`
	WebsiteURL  string  `json:"website_url"`
	Pricing     string  `json:"pricing"`
	IsActive    bool    `json:"is_active"`
	IsFeatured  bool    `json:"is_featured"`
	ViewCount   int64   `json:"view_count"`
	LikeCount   int64   `json:"like_count"`
	ReviewCount int64   `json:"review_count"`
	Rating      float64 `json:"rating"`
	SeoTitle    string  `json:"seo_title"`
	SeoDesc     string  `json:"seo_desc"`
	SeoKeywords string  `json:"seo_keywords"`
	JsonLD      string  `json:"json_ld,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`

	// Owner
	OwnerID uint64 `json:"owner_id"`

	// Category
	CategoryID   uint64 `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// ToolListDTO 工具 - 列表
type ToolListDTO struct {
	List    []*ToolDTO `json:"list"`
	HasMore bool       `json:"has_more"`
}

// ToolQueryDTO 工具 - 列表查询
type ToolQueryDTO struct {
	PageDTO
	CategoryID uint64 `form:"category_id"`
	Featured   bool   `form:"featured"`
}
