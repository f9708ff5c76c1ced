package repository

import (
	"MarketMind/internal/model"
	"MarketMind/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ToolRepo interface {
	CreateTool(ctx context.Context, tool *model.Tool) error
	GetTool(ctx context.Context, id uint64) (*model.Tool, error)
	GetToolBySlug(ctx context.Context, slug string) (*model.Tool, error)
	ExistsSlug(ctx context.Context, slug string, excludeID uint64) (bool, error)
	ListActive(ctx context.Context, categoryID uint64, featuredOnly bool, limit, offset int) ([]*model.Tool, error)
	ListByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]*model.Tool, error)
	UpdateTool(ctx context.Context, tool *model.Tool) error
	UpdateActive(ctx context.Context, id uint64, active bool) error
	UpdateFeatured(ctx context.Context, id uint64, featured bool) error
	DeleteTool(ctx context.Context, id uint64) error
}

type ToolRepoImpl struct {
	db *gorm.DB
}

func NewToolRepo(db *gorm.DB) ToolRepo {
	return &ToolRepoImpl{db: db}
}

func (s *ToolRepoImpl) CreateTool(ctx context.Context, tool *model.Tool) error {
	return s.db.WithContext(ctx).Create(tool).Error
}

func (s *ToolRepoImpl) GetTool(ctx context.Context, id uint64) (*model.Tool, error) {
	var tool model.Tool
	err := s.db.WithContext(ctx).Preload("Owner").Preload("Category").First(&tool, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tool, nil
}

func (s *ToolRepoImpl) GetToolBySlug(ctx context.Context, slug string) (*model.Tool, error) {
	var tool model.Tool
	err := s.db.WithContext(ctx).Preload("Owner").Preload("Category").
		Where("slug = ?", slug).First(&tool).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tool, nil
}

func (s *ToolRepoImpl) ExistsSlug(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Tool{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (s *ToolRepoImpl) ListActive(ctx context.Context, categoryID uint64, featuredOnly bool, limit, offset int) ([]*model.Tool, error) {
	var tools []*model.Tool
	query := s.db.WithContext(ctx).Preload("Category").Where("is_active = ?", true)
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if featuredOnly {
		query = query.Where("is_featured = ?", true)
	}
	err := query.Order("rating DESC, review_count DESC").
		Limit(limit).Offset(offset).
		Find(&tools).Error
	return tools, err
}

func (s *ToolRepoImpl) ListByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]*model.Tool, error) {
	var tools []*model.Tool
	err := s.db.WithContext(ctx).Preload("Category").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&tools).Error
	return tools, err
}

func (s *ToolRepoImpl) UpdateTool(ctx context.Context, tool *model.Tool) error {
	return s.db.WithContext(ctx).Save(tool).Error
}

func (s *ToolRepoImpl) UpdateActive(ctx context.Context, id uint64, active bool) error {
	return s.db.WithContext(ctx).Model(&model.Tool{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (s *ToolRepoImpl) UpdateFeatured(ctx context.Context, id uint64, featured bool) error {
	return s.db.WithContext(ctx).Model(&model.Tool{}).
		Where("id = ?", id).
		Update("is_featured", featured).Error
}

// DeleteTool 删除工具并级联清理其名下的互动数据
func (s *ToolRepoImpl) DeleteTool(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Tool{}, id).Error; err != nil {
			return err
		}
		return purgeEngagement(tx, consts.ContentKindTool, id)
	})
}
