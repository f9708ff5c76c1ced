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

type ToolHandler struct {
	toolSvc       service.ToolService
	engagementSvc service.EngagementService
}

func NewToolHandler(toolSvc service.ToolService, engagementSvc service.EngagementService) *ToolHandler {
	return &ToolHandler{
		toolSvc:       toolSvc,
		engagementSvc: engagementSvc,
	}
}

func (s *ToolHandler) CreateTool(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.ToolBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	tool, err := s.toolSvc.CreateTool(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tool)
}

func (s *ToolHandler) UpdateTool(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	toolID, err := strconv.ParseUint(c.Param("tool_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ToolUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	tool, err := s.toolSvc.UpdateTool(c.Request.Context(), userID, roles, toolID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tool)
}

func (s *ToolHandler) SetToolActive(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	toolID, err := strconv.ParseUint(c.Param("tool_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	active, err := strconv.ParseBool(c.Query("active"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.toolSvc.SetToolActive(c.Request.Context(), userID, roles, toolID, active); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *ToolHandler) SetToolFeatured(c *gin.Context) {
	toolID, err := strconv.ParseUint(c.Param("tool_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	featured, err := strconv.ParseBool(c.Query("featured"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.toolSvc.SetToolFeatured(c.Request.Context(), toolID, featured); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *ToolHandler) DeleteTool(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	toolID, err := strconv.ParseUint(c.Param("tool_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.toolSvc.DeleteTool(c.Request.Context(), userID, roles, toolID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// GetToolBySlug 详情页，浏览量异步进缓冲
func (s *ToolHandler) GetToolBySlug(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")
	slug := c.Param("slug")

	tool, err := s.toolSvc.GetToolBySlug(c.Request.Context(), userID, roles, slug)
	if err != nil {
		response.Error(c, err)
		return
	}

	go func(toolID uint64) {
		viewCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.engagementSvc.RecordView(viewCtx, userID, consts.ContentKindTool, toolID, time.Now())
	}(tool.ID)

	response.Success(c, tool)
}

func (s *ToolHandler) ListTools(c *gin.Context) {
	var query dto.ToolQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	tools, err := s.toolSvc.ListActive(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tools)
}

func (s *ToolHandler) ListSelfTools(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	limit, _ := page.LimitOffset()
	tools, err := s.toolSvc.ListSelf(c.Request.Context(), userID, page.Page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tools)
}

func (s *ToolHandler) SeoReport(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	toolID, err := strconv.ParseUint(c.Param("tool_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	report, err := s.toolSvc.SeoReport(c.Request.Context(), userID, roles, toolID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, report)
}
