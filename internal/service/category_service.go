package service

import (
	"MarketMind/internal/api/dto"
	"MarketMind/internal/model"
	"MarketMind/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, categoryDTO *dto.CategoryBaseDTO) (*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, categoryID uint64, categoryDTO *dto.CategoryBaseDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, categoryID uint64) error
	GetCategoryBySlug(ctx context.Context, slug string) (*dto.CategoryDTO, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, categoryDTO *dto.CategoryBaseDTO) (*dto.CategoryDTO, error) {
	category := &model.Category{
		Name:        categoryDTO.Name,
		Description: categoryDTO.Description,
		IsActive:    true,
	}

	exists := func(slugVal string) (bool, error) {
		return s.categoryRepo.ExistsSlug(ctx, slugVal, 0)
	}
	err := createWithSlugRetry(categoryDTO.Name, exists, func(slugVal string) error {
		category.Slug = slugVal
		return s.categoryRepo.CreateCategory(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return toCategoryDTO(category), nil
}

// UpdateCategory 名称变化时重新取号
func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, categoryID uint64, categoryDTO *dto.CategoryBaseDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetCategory(ctx, categoryID)
	if err != nil {
		log.ErrorContext(ctx, "get category error", "err", err, "category_id", categoryID)
		return nil, UnExpectedError
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	nameChanged := categoryDTO.Name != category.Name
	category.Name = categoryDTO.Name
	category.Description = categoryDTO.Description

	if nameChanged {
		exists := func(slugVal string) (bool, error) {
			return s.categoryRepo.ExistsSlug(ctx, slugVal, category.ID)
		}
		err = createWithSlugRetry(category.Name, exists, func(slugVal string) error {
			category.Slug = slugVal
			return s.categoryRepo.UpdateCategory(ctx, category)
		})
	} else {
		err = s.categoryRepo.UpdateCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}
	return toCategoryDTO(category), nil
}

// DeleteCategory 仍被内容引用的分类不允许删除
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, categoryID uint64) error {
	category, err := s.categoryRepo.GetCategory(ctx, categoryID)
	if err != nil {
		log.ErrorContext(ctx, "get category error", "err", err, "category_id", categoryID)
		return UnExpectedError
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	usage, err := s.categoryRepo.CountUsage(ctx, categoryID)
	if err != nil {
		log.ErrorContext(ctx, "count category usage error", "err", err, "category_id", categoryID)
		return UnExpectedError
	}
	if usage > 0 {
		return ErrCategoryInUse
	}

	if err = s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		log.ErrorContext(ctx, "delete category error", "err", err, "category_id", categoryID)
		return UnExpectedError
	}
	return nil
}

func (s *categoryServiceImpl) GetCategoryBySlug(ctx context.Context, slug string) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		log.ErrorContext(ctx, "get category by slug error", "err", err, "slug", slug)
		return nil, UnExpectedError
	}
	if category == nil || !category.IsActive {
		return nil, ErrCategoryNotFound
	}
	return toCategoryDTO(category), nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list categories error", "err", err)
		return nil, UnExpectedError
	}
	list := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		list = append(list, toCategoryDTO(category))
	}
	return list, nil
}

func toCategoryDTO(category *model.Category) *dto.CategoryDTO {
	out := &dto.CategoryDTO{}
	_ = copier.Copy(out, category)
	out.CreatedAt = category.CreatedAt.Format("2006-01-02 15:04:05")
	return out
}
