package handler

import (
	"MarketMind/internal/api/dto"
	"MarketMind/internal/pkg/response"
	"MarketMind/internal/service"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementSvc: engagementSvc,
	}
}

func (s *EngagementHandler) AddReview(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.ReviewCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	review, err := s.engagementSvc.AddReview(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, review)
}

// RecordView 匿名也计数，不去重
func (s *EngagementHandler) RecordView(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var ref dto.ContentRefDTO
	if err := c.ShouldBindJSON(&ref); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.engagementSvc.RecordView(c.Request.Context(), userID, ref.ContentKind, ref.ContentID, time.Now()); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *EngagementHandler) ListReviews(c *gin.Context) {
	ref, page, ok := s.bindListQuery(c)
	if !ok {
		return
	}

	limit, _ := page.LimitOffset()
	reviews, err := s.engagementSvc.ListReviews(c.Request.Context(), ref.ContentKind, ref.ContentID, page.Page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, reviews)
}

func (s *EngagementHandler) ToggleLike(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var ref dto.ContentRefDTO
	if err := c.ShouldBindJSON(&ref); err != nil {
		response.Error(c, err)
		return
	}

	state, err := s.engagementSvc.ToggleLike(c.Request.Context(), userID, ref.ContentKind, ref.ContentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, state)
}

func (s *EngagementHandler) GetLikeState(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var ref dto.ContentRefDTO
	if err := c.ShouldBindQuery(&ref); err != nil {
		response.Error(c, err)
		return
	}

	state, err := s.engagementSvc.GetLikeState(c.Request.Context(), userID, ref.ContentKind, ref.ContentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, state)
}

func (s *EngagementHandler) ToggleBookmark(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var ref dto.ContentRefDTO
	if err := c.ShouldBindJSON(&ref); err != nil {
		response.Error(c, err)
		return
	}

	state, err := s.engagementSvc.ToggleBookmark(c.Request.Context(), userID, ref.ContentKind, ref.ContentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, state)
}

func (s *EngagementHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.engagementSvc.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comment)
}

func (s *EngagementHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.engagementSvc.DeleteComment(c.Request.Context(), userID, roles, commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *EngagementHandler) ListComments(c *gin.Context) {
	ref, page, ok := s.bindListQuery(c)
	if !ok {
		return
	}

	limit, _ := page.LimitOffset()
	comments, err := s.engagementSvc.ListComments(c.Request.Context(), ref.ContentKind, ref.ContentID, page.Page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comments)
}

func (s *EngagementHandler) bindListQuery(c *gin.Context) (*dto.ContentRefDTO, *dto.PageDTO, bool) {
	var ref dto.ContentRefDTO
	if err := c.ShouldBindQuery(&ref); err != nil {
		response.Error(c, err)
		return nil, nil, false
	}
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return nil, nil, false
	}
	return &ref, &page, true
}
