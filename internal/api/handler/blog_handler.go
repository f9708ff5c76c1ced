package handler

import (
	"MarketMind/internal/api/dto"
	"MarketMind/internal/pkg/consts"
	"MarketMind/internal/pkg/response"
	"MarketMind/internal/service"
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogSvc       service.BlogService
	engagementSvc service.EngagementService
}

func NewBlogHandler(blogSvc service.BlogService, engagementSvc service.EngagementService) *BlogHandler {
	return &BlogHandler{
		blogSvc:       blogSvc,
		engagementSvc: engagementSvc,
	}
}

func (s *BlogHandler) CreateBlog(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.BlogBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	blog, err := s.blogSvc.CreateBlog(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, blog)
}

func (s *BlogHandler) UpdateBlog(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	blogID, err := strconv.ParseUint(c.Param("blog_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.BlogUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	blog, err := s.blogSvc.UpdateBlog(c.Request.Context(), userID, roles, blogID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, blog)
}

// GetBlog 作者编辑态按 id 取详情，草稿对作者与管理员可见
func (s *BlogHandler) GetBlog(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	blogID, err := strconv.ParseUint(c.Param("blog_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	blog, err := s.blogSvc.GetBlog(c.Request.Context(), userID, roles, blogID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, blog)
}

func (s *BlogHandler) PublishBlog(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	blogID, err := strconv.ParseUint(c.Param("blog_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	blog, err := s.blogSvc.PublishBlog(c.Request.Context(), userID, roles, blogID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, blog)
}

func (s *BlogHandler) ArchiveBlog(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	blogID, err := strconv.ParseUint(c.Param("blog_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.blogSvc.ArchiveBlog(c.Request.Context(), userID, roles, blogID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *BlogHandler) DeleteBlog(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	blogID, err := strconv.ParseUint(c.Param("blog_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.blogSvc.DeleteBlog(c.Request.Context(), userID, roles, blogID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// GetBlogBySlug 详情页，浏览量异步进缓冲
func (s *BlogHandler) GetBlogBySlug(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")
	slug := c.Param("slug")

	blog, err := s.blogSvc.GetBlogBySlug(c.Request.Context(), userID, roles, slug)
	if err != nil {
		response.Error(c, err)
		return
	}

	go func(blogID uint64) {
		viewCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.engagementSvc.RecordView(viewCtx, userID, consts.ContentKindBlog, blogID, time.Now())
	}(blog.ID)

	response.Success(c, blog)
}

func (s *BlogHandler) ListBlogs(c *gin.Context) {
	var query dto.BlogQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	blogs, err := s.blogSvc.ListPublished(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, blogs)
}

func (s *BlogHandler) ListSelfBlogs(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	limit, _ := page.LimitOffset()
	blogs, err := s.blogSvc.ListSelf(c.Request.Context(), userID, page.Page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, blogs)
}

func (s *BlogHandler) SeoReport(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	blogID, err := strconv.ParseUint(c.Param("blog_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	report, err := s.blogSvc.SeoReport(c.Request.Context(), userID, roles, blogID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, report)
}
