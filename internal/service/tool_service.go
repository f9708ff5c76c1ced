package service

import (
	"MarketMind/internal/api/dto"
	"MarketMind/internal/model"
	"MarketMind/internal/pkg/consts"
	"MarketMind/internal/pkg/seo"
	"MarketMind/internal/repository"
	"context"
	log "log/slog"
	"strings"

	"github.com/jinzhu/copier"
)

type ToolService interface {
	CreateTool(ctx context.Context, userID uint64, toolDTO *dto.ToolBaseDTO) (*dto.ToolDTO, error)
	UpdateTool(ctx context.Context, userID uint64, roles []string, toolID uint64, toolDTO *dto.ToolUpdateDTO) (*dto.ToolDTO, error)
	SetToolActive(ctx context.Context, userID uint64, roles []string, toolID uint64, active bool) error
	SetToolFeatured(ctx context.Context, toolID uint64, featured bool) error
	DeleteTool(ctx context.Context, userID uint64, roles []string, toolID uint64) error
	GetTool(ctx context.Context, viewerID uint64, roles []string, toolID uint64) (*dto.ToolDTO, error)
	GetToolBySlug(ctx context.Context, viewerID uint64, roles []string, slug string) (*dto.ToolDTO, error)
	ListActive(ctx context.Context, query *dto.ToolQueryDTO) (*dto.ToolListDTO, error)
	ListSelf(ctx context.Context, userID uint64, page, pageSize int) (*dto.ToolListDTO, error)
	SeoReport(ctx context.Context, userID uint64, roles []string, toolID uint64) (*dto.SeoReportDTO, error)
}

type toolServiceImpl struct {
	toolRepo repository.ToolRepo
}

func NewToolService(toolRepo repository.ToolRepo) ToolService {
	return &toolServiceImpl{toolRepo: toolRepo}
}

// CreateTool 收录工具，默认上架，slug 依据名称取号
func (s *toolServiceImpl) CreateTool(ctx context.Context, userID uint64, toolDTO *dto.ToolBaseDTO) (*dto.ToolDTO, error) {
	tool := &model.Tool{}
	if err := copier.Copy(tool, toolDTO); err != nil {
		log.ErrorContext(ctx, "copy tool dto error", "err", err)
		return nil, UnExpectedError
	}
	tool.OwnerID = userID
	tool.IsActive = true

	exists := func(slugVal string) (bool, error) {
		return s.toolRepo.ExistsSlug(ctx, slugVal, 0)
	}
	err := createWithSlugRetry(toolDTO.Name, exists, func(slugVal string) error {
		tool.Slug = slugVal
		return s.toolRepo.CreateTool(ctx, tool)
	})
	if err != nil {
		return nil, err
	}
	return s.toToolDTO(tool), nil
}

// UpdateTool 局部更新，名称变化时重新取号
func (s *toolServiceImpl) UpdateTool(ctx context.Context, userID uint64, roles []string, toolID uint64, toolDTO *dto.ToolUpdateDTO) (*dto.ToolDTO, error) {
	tool, err := s.toolRepo.GetTool(ctx, toolID)
	if err != nil {
		log.ErrorContext(ctx, "get tool error", "err", err, "tool_id", toolID)
		return nil, UnExpectedError
	}
	if tool == nil {
		return nil, ErrToolNotFound
	}
	if tool.OwnerID != userID && !hasAdminRole(roles) {
		return nil, UnauthorizedError
	}

	nameChanged := toolDTO.Name != nil && *toolDTO.Name != tool.Name
	applyToolUpdate(tool, toolDTO)

	if nameChanged {
		exists := func(slugVal string) (bool, error) {
			return s.toolRepo.ExistsSlug(ctx, slugVal, tool.ID)
		}
		err = createWithSlugRetry(tool.Name, exists, func(slugVal string) error {
			tool.Slug = slugVal
			return s.toolRepo.UpdateTool(ctx, tool)
		})
	} else {
		err = s.toolRepo.UpdateTool(ctx, tool)
	}
	if err != nil {
		return nil, err
	}
	return s.toToolDTO(tool), nil
}

// SetToolActive 上下架
func (s *toolServiceImpl) SetToolActive(ctx context.Context, userID uint64, roles []string, toolID uint64, active bool) error {
	tool, err := s.toolRepo.GetTool(ctx, toolID)
	if err != nil {
		log.ErrorContext(ctx, "get tool error", "err", err, "tool_id", toolID)
		return UnExpectedError
	}
	if tool == nil {
		return ErrToolNotFound
	}
	if tool.OwnerID != userID && !hasAdminRole(roles) {
		return UnauthorizedError
	}

	if err = s.toolRepo.UpdateActive(ctx, toolID, active); err != nil {
		log.ErrorContext(ctx, "update tool active error", "err", err, "tool_id", toolID)
		return UnExpectedError
	}
	return nil
}

// SetToolFeatured 推荐位，仅管理员入口调用
func (s *toolServiceImpl) SetToolFeatured(ctx context.Context, toolID uint64, featured bool) error {
	tool, err := s.toolRepo.GetTool(ctx, toolID)
	if err != nil {
		log.ErrorContext(ctx, "get tool error", "err", err, "tool_id", toolID)
		return UnExpectedError
	}
	if tool == nil {
		return ErrToolNotFound
	}

	if err = s.toolRepo.UpdateFeatured(ctx, toolID, featured); err != nil {
		log.ErrorContext(ctx, "update tool featured error", "err", err, "tool_id", toolID)
		return UnExpectedError
	}
	return nil
}

func (s *toolServiceImpl) DeleteTool(ctx context.Context, userID uint64, roles []string, toolID uint64) error {
	tool, err := s.toolRepo.GetTool(ctx, toolID)
	if err != nil {
		log.ErrorContext(ctx, "get tool error", "err", err, "tool_id", toolID)
		return UnExpectedError
	}
	if tool == nil {
		return ErrToolNotFound
	}
	if tool.OwnerID != userID && !hasAdminRole(roles) {
		return UnauthorizedError
	}

	if err = s.toolRepo.DeleteTool(ctx, toolID); err != nil {
		log.ErrorContext(ctx, "delete tool error", "err", err, "tool_id", toolID)
		return UnExpectedError
	}
	return nil
}

func (s *toolServiceImpl) GetTool(ctx context.Context, viewerID uint64, roles []string, toolID uint64) (*dto.ToolDTO, error) {
	tool, err := s.toolRepo.GetTool(ctx, toolID)
	if err != nil {
		log.ErrorContext(ctx, "get tool error", "err", err, "tool_id", toolID)
		return nil, UnExpectedError
	}
	return s.checkVisible(tool, viewerID, roles)
}

func (s *toolServiceImpl) GetToolBySlug(ctx context.Context, viewerID uint64, roles []string, slug string) (*dto.ToolDTO, error) {
	tool, err := s.toolRepo.GetToolBySlug(ctx, slug)
	if err != nil {
		log.ErrorContext(ctx, "get tool by slug error", "err", err, "slug", slug)
		return nil, UnExpectedError
	}
	return s.checkVisible(tool, viewerID, roles)
}

// checkVisible 下架工具只有所有者和管理员可见
func (s *toolServiceImpl) checkVisible(tool *model.Tool, viewerID uint64, roles []string) (*dto.ToolDTO, error) {
	if tool == nil {
		return nil, ErrToolNotFound
	}
	if !tool.IsVisible() && tool.OwnerID != viewerID && !hasAdminRole(roles) {
		return nil, ErrToolNotFound
	}
	return s.toToolDTO(tool), nil
}

func (s *toolServiceImpl) ListActive(ctx context.Context, query *dto.ToolQueryDTO) (*dto.ToolListDTO, error) {
	limit, offset := query.LimitOffset()
	tools, err := s.toolRepo.ListActive(ctx, query.CategoryID, query.Featured, limit+1, offset)
	if err != nil {
		log.ErrorContext(ctx, "list active tools error", "err", err)
		return nil, UnExpectedError
	}
	return s.toToolListDTO(tools, limit), nil
}

func (s *toolServiceImpl) ListSelf(ctx context.Context, userID uint64, page, pageSize int) (*dto.ToolListDTO, error) {
	offset := (page - 1) * pageSize
	tools, err := s.toolRepo.ListByOwner(ctx, userID, pageSize+1, offset)
	if err != nil {
		log.ErrorContext(ctx, "list self tools error", "err", err)
		return nil, UnExpectedError
	}
	return s.toToolListDTO(tools, pageSize), nil
}

// SeoReport 所有者查看工具页的 SEO 评估
func (s *toolServiceImpl) SeoReport(ctx context.Context, userID uint64, roles []string, toolID uint64) (*dto.SeoReportDTO, error) {
	tool, err := s.toolRepo.GetTool(ctx, toolID)
	if err != nil {
		log.ErrorContext(ctx, "get tool error", "err", err, "tool_id", toolID)
		return nil, UnExpectedError
	}
	if tool == nil {
		return nil, ErrToolNotFound
	}
	if tool.OwnerID != userID && !hasAdminRole(roles) {
		return nil, UnauthorizedError
	}

	title := tool.SeoTitle
	if title == "" {
		title = tool.Name
	}
	result := seo.Score(seo.ScoreInput{
		Title:         title,
		Description:   tool.SeoDesc,
		Keywords:      splitKeywords(tool.SeoKeywords),
		Content:       tool.Description,
		InternalLinks: strings.Count(tool.Description, "](/"),
		BrandName:     consts.BrandName,
	})

	jsonLD, err := seo.BuildSoftwareApplicationLD(tool.Name, tool.SeoDesc, tool.WebsiteURL,
		tool.Category.Name, tool.Rating, tool.ReviewCount)
	if err != nil {
		log.WarnContext(ctx, "build software json-ld error", "err", err, "tool_id", toolID)
	}

	return &dto.SeoReportDTO{
		Overall: result.Overall,
		Breakdown: map[string]int{
			"title":       result.Breakdown.Title,
			"description": result.Breakdown.Description,
			"keywords":    result.Breakdown.Keywords,
			"content":     result.Breakdown.Content,
			"links":       result.Breakdown.Links,
		},
		Recommendations: result.Recommendations,
		JsonLD:          jsonLD,
	}, nil
}

func (s *toolServiceImpl) toToolDTO(tool *model.Tool) *dto.ToolDTO {
	out := &dto.ToolDTO{}
	_ = copier.Copy(out, tool)
	out.CreatedAt = tool.CreatedAt.Format("2006-01-02 15:04:05")
	out.UpdatedAt = tool.UpdatedAt.Format("2006-01-02 15:04:05")
	out.CategoryName = tool.Category.Name
	return out
}

func (s *toolServiceImpl) toToolListDTO(tools []*model.Tool, limit int) *dto.ToolListDTO {
	hasMore := len(tools) > limit
	if hasMore {
		tools = tools[:limit]
	}
	list := make([]*dto.ToolDTO, 0, len(tools))
	for _, tool := range tools {
		list = append(list, s.toToolDTO(tool))
	}
	return &dto.ToolListDTO{List: list, HasMore: hasMore}
}

// applyToolUpdate nil 字段保持原值
func applyToolUpdate(tool *model.Tool, d *dto.ToolUpdateDTO) {
	if d.Name != nil {
		tool.Name = *d.Name
	}
	if d.Tagline != nil {
		tool.Tagline = *d.Tagline
	}
	if d.Description != nil {
		tool.Description = *d.Description
	}
	if d.WebsiteURL != nil {
		tool.WebsiteURL = *d.WebsiteURL
	}
	if d.Pricing != nil {
		tool.Pricing = *d.Pricing
	}
	if d.CategoryID != nil {
		tool.CategoryID = *d.CategoryID
	}
	if d.SeoTitle != nil {
		tool.SeoTitle = *d.SeoTitle
	}
	if d.SeoDesc != nil {
		tool.SeoDesc = *d.SeoDesc
	}
	if d.SeoKeywords != nil {
		tool.SeoKeywords = *d.SeoKeywords
	}
}
