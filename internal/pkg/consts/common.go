package consts

// 内容类型命名空间，slug 唯一性与互动计数都按此隔离
const (
	ContentKindBlog     = "blog"
	ContentKindTool     = "tool"
	ContentKindCategory = "category"
)

// 博客生命周期状态
const (
	BlogStatusDraft     int8 = 0
	BlogStatusPublished int8 = 1
	BlogStatusArchived  int8 = 2
)

const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// DefaultSlugBase 标题清洗后为空时的兜底 slug 基底
const DefaultSlugBase = "untitled"

// BrandName SEO 打分时识别品牌词用
const BrandName = "MarketMind"
