package repository

import (
	"MarketMind/internal/model"
	"MarketMind/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type BlogRepo interface {
	CreateBlog(ctx context.Context, blog *model.Blog) error
	GetBlog(ctx context.Context, id uint64) (*model.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*model.Blog, error)
	ExistsSlug(ctx context.Context, slug string, excludeID uint64) (bool, error)
	ListPublished(ctx context.Context, categoryID uint64, limit, offset int) ([]*model.Blog, error)
	ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Blog, error)
	UpdateBlog(ctx context.Context, blog *model.Blog) error
	DeleteBlog(ctx context.Context, id uint64) error
}

type BlogRepoImpl struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) BlogRepo {
	return &BlogRepoImpl{db: db}
}

func (s *BlogRepoImpl) CreateBlog(ctx context.Context, blog *model.Blog) error {
	return s.db.WithContext(ctx).Create(blog).Error
}

func (s *BlogRepoImpl) GetBlog(ctx context.Context, id uint64) (*model.Blog, error) {
	var blog model.Blog
	err := s.db.WithContext(ctx).Preload("Author").Preload("Category").First(&blog, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (s *BlogRepoImpl) GetBlogBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	var blog model.Blog
	err := s.db.WithContext(ctx).Preload("Author").Preload("Category").
		Where("slug = ?", slug).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (s *BlogRepoImpl) ExistsSlug(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Blog{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (s *BlogRepoImpl) ListPublished(ctx context.Context, categoryID uint64, limit, offset int) ([]*model.Blog, error) {
	var blogs []*model.Blog
	query := s.db.WithContext(ctx).Preload("Author").Preload("Category").
		Where("status = ?", consts.BlogStatusPublished)
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.Order("published_at DESC").
		Limit(limit).Offset(offset).
		Find(&blogs).Error
	return blogs, err
}

func (s *BlogRepoImpl) ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Blog, error) {
	var blogs []*model.Blog
	err := s.db.WithContext(ctx).Preload("Category").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&blogs).Error
	return blogs, err
}

func (s *BlogRepoImpl) UpdateBlog(ctx context.Context, blog *model.Blog) error {
	return s.db.WithContext(ctx).Save(blog).Error
}

// DeleteBlog 删除博客并级联清理其名下的互动数据
func (s *BlogRepoImpl) DeleteBlog(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Blog{}, id).Error; err != nil {
			return err
		}
		return purgeEngagement(tx, consts.ContentKindBlog, id)
	})
}
