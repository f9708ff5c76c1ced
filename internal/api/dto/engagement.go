package dto

// ContentRefDTO 互动目标，kind 只允许 blog / tool
type ContentRefDTO struct {
	ContentKind string `json:"content_kind" form:"content_kind" binding:"required,oneof=blog tool"`
	ContentID   uint64 `json:"content_id" form:"content_id" binding:"required"`
}

// ReviewCreateDTO 评分 - 新增
type ReviewCreateDTO struct {
	ContentRefDTO
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Body   string `json:"body" binding:"omitempty,max=2000"`
}

// ReviewDTO 评分
type ReviewDTO struct {
	ID        uint64 `json:"id"`
	Rating    int    `json:"rating"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`

	// User
	UserID   uint64 `json:"user_id"`
	Nickname string `json:"nickname"`
}

// ReviewListDTO 评分 - 列表
type ReviewListDTO struct {
	List    []*ReviewDTO `json:"list"`
	HasMore bool         `json:"has_more"`
}

// CommentCreateDTO 评论 - 新增
type CommentCreateDTO struct {
	ContentRefDTO
	Body string `json:"body" binding:"required,min=1,max=2000"`
}

// CommentDTO 评论
type CommentDTO struct {
	ID        uint64 `json:"id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`

	// User
	UserID   uint64 `json:"user_id"`
	Nickname string `json:"nickname"`
}

// CommentListDTO 评论 - 列表
type CommentListDTO struct {
	List    []*CommentDTO `json:"list"`
	HasMore bool          `json:"has_more"`
}

// LikeStateDTO 点赞状态
type LikeStateDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// BookmarkStateDTO 收藏状态
type BookmarkStateDTO struct {
	Bookmarked bool `json:"bookmarked"`
}
