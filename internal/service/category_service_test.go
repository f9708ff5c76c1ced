package service

import (
	"MarketMind/internal/api/dto"
	"MarketMind/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateCategorySlugFromName(t *testing.T) {
	mockRepo := new(MockCategoryRepo)
	svc := NewCategoryService(mockRepo)

	mockRepo.On("ExistsSlug", mock.Anything, "writing-assistants", uint64(0)).Return(false, nil)
	mockRepo.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.Slug == "writing-assistants" && c.IsActive
	})).Return(nil)

	out, err := svc.CreateCategory(context.Background(), &dto.CategoryBaseDTO{
		Name: "Writing Assistants",
	})

	assert.NoError(t, err)
	assert.Equal(t, "writing-assistants", out.Slug)
	mockRepo.AssertExpectations(t)
}

func TestDeleteCategoryInUseRejected(t *testing.T) {
	mockRepo := new(MockCategoryRepo)
	svc := NewCategoryService(mockRepo)

	category := &model.Category{ID: 3, Name: "SEO", IsActive: true}
	mockRepo.On("GetCategory", mock.Anything, uint64(3)).Return(category, nil)
	mockRepo.On("CountUsage", mock.Anything, uint64(3)).Return(int64(4), nil)

	err := svc.DeleteCategory(context.Background(), 3)

	assert.ErrorIs(t, err, ErrCategoryInUse)
	mockRepo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
}

func TestDeleteCategoryUnused(t *testing.T) {
	mockRepo := new(MockCategoryRepo)
	svc := NewCategoryService(mockRepo)

	category := &model.Category{ID: 3, Name: "SEO", IsActive: true}
	mockRepo.On("GetCategory", mock.Anything, uint64(3)).Return(category, nil)
	mockRepo.On("CountUsage", mock.Anything, uint64(3)).Return(int64(0), nil)
	mockRepo.On("DeleteCategory", mock.Anything, uint64(3)).Return(nil)

	assert.NoError(t, svc.DeleteCategory(context.Background(), 3))
	mockRepo.AssertExpectations(t)
}

func TestUpdateCategoryNameChangedRecomputesSlug(t *testing.T) {
	mockRepo := new(MockCategoryRepo)
	svc := NewCategoryService(mockRepo)

	category := &model.Category{ID: 3, Name: "SEO", Slug: "seo", IsActive: true}
	mockRepo.On("GetCategory", mock.Anything, uint64(3)).Return(category, nil)
	mockRepo.On("ExistsSlug", mock.Anything, "seo-tools", uint64(3)).Return(false, nil)
	mockRepo.On("UpdateCategory", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.UpdateCategory(context.Background(), 3, &dto.CategoryBaseDTO{Name: "SEO Tools"})

	assert.NoError(t, err)
	assert.Equal(t, "seo-tools", out.Slug)
}

func TestGetCategoryBySlugInactiveHidden(t *testing.T) {
	mockRepo := new(MockCategoryRepo)
	svc := NewCategoryService(mockRepo)

	category := &model.Category{ID: 3, Slug: "legacy", IsActive: false}
	mockRepo.On("GetCategoryBySlug", mock.Anything, "legacy").Return(category, nil)

	_, err := svc.GetCategoryBySlug(context.Background(), "legacy")

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
