package service

import (
	"MarketMind/internal/api/dto"
	"MarketMind/internal/model"
	"MarketMind/internal/pkg/consts"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateBlogGeneratesSlugFromTitle(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	mockRepo.On("ExistsSlug", mock.Anything, "hello-world", uint64(0)).Return(false, nil)
	mockRepo.On("CreateBlog", mock.Anything, mock.MatchedBy(func(b *model.Blog) bool {
		return b.Slug == "hello-world" && b.Status == consts.BlogStatusDraft
	})).Return(nil)

	out, err := svc.CreateBlog(context.Background(), 1, &dto.BlogBaseDTO{
		Title:   "Hello, World!",
		Content: "some words here",
	})

	assert.NoError(t, err)
	assert.Equal(t, "hello-world", out.Slug)
	assert.Equal(t, consts.BlogStatusDraft, out.Status)
	assert.Equal(t, 1, out.ReadingTime)
	mockRepo.AssertExpectations(t)
}

func TestCreateBlogSlugCollisionAppendsSuffix(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	mockRepo.On("ExistsSlug", mock.Anything, "hello-world", uint64(0)).Return(true, nil)
	mockRepo.On("ExistsSlug", mock.Anything, "hello-world-1", uint64(0)).Return(false, nil)
	mockRepo.On("CreateBlog", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.CreateBlog(context.Background(), 1, &dto.BlogBaseDTO{
		Title:   "Hello, World!",
		Content: "body",
	})

	assert.NoError(t, err)
	assert.Equal(t, "hello-world-1", out.Slug)
	mockRepo.AssertExpectations(t)
}

func TestCreateBlogEmptyTitleFallsBackToDefaultSlug(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	mockRepo.On("ExistsSlug", mock.Anything, "untitled", uint64(0)).Return(false, nil)
	mockRepo.On("CreateBlog", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.CreateBlog(context.Background(), 1, &dto.BlogBaseDTO{
		Title:   "你好世界",
		Content: "body",
	})

	assert.NoError(t, err)
	assert.Equal(t, "untitled", out.Slug)
}

func TestUpdateBlogTitleUnchangedKeepsSlug(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	blog := &model.Blog{ID: 5, AuthorID: 1, Title: "Hello", Slug: "hello", Content: "old"}
	mockRepo.On("GetBlog", mock.Anything, uint64(5)).Return(blog, nil)
	mockRepo.On("UpdateBlog", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.UpdateBlog(context.Background(), 1, nil, 5, &dto.BlogUpdateDTO{
		Content: strPtr("new body"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "hello", out.Slug)
	assert.Equal(t, "new body", out.Content)
	mockRepo.AssertNotCalled(t, "ExistsSlug", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBlogTitleChangedRecomputesSlug(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	blog := &model.Blog{ID: 5, AuthorID: 1, Title: "Hello", Slug: "hello"}
	mockRepo.On("GetBlog", mock.Anything, uint64(5)).Return(blog, nil)
	mockRepo.On("ExistsSlug", mock.Anything, "fresh-title", uint64(5)).Return(false, nil)
	mockRepo.On("UpdateBlog", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.UpdateBlog(context.Background(), 1, nil, 5, &dto.BlogUpdateDTO{
		Title: strPtr("Fresh Title"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "fresh-title", out.Slug)
	mockRepo.AssertExpectations(t)
}

func TestUpdateBlogNotAuthorRejected(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	blog := &model.Blog{ID: 5, AuthorID: 1}
	mockRepo.On("GetBlog", mock.Anything, uint64(5)).Return(blog, nil)

	_, err := svc.UpdateBlog(context.Background(), 2, nil, 5, &dto.BlogUpdateDTO{
		Title: strPtr("hijack"),
	})

	assert.ErrorIs(t, err, UnauthorizedError)
}

func TestUpdateBlogAdminAllowed(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	blog := &model.Blog{ID: 5, AuthorID: 1, Title: "Hello", Slug: "hello"}
	mockRepo.On("GetBlog", mock.Anything, uint64(5)).Return(blog, nil)
	mockRepo.On("UpdateBlog", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.UpdateBlog(context.Background(), 99, []string{consts.RoleAdmin}, 5, &dto.BlogUpdateDTO{
		Content: strPtr("moderated"),
	})

	assert.NoError(t, err)
}

func TestPublishBlogSetsPublishedAtOnce(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	notifier := new(MockNotifier)
	svc := NewBlogService(mockRepo, notifier)

	notified := make(chan struct{})
	notifier.On("Notify", mock.Anything, "/blogs/hello").
		Run(func(args mock.Arguments) { close(notified) }).
		Return(nil)

	blog := &model.Blog{ID: 5, AuthorID: 1, Title: "Hello", Slug: "hello", Status: consts.BlogStatusDraft}
	mockRepo.On("GetBlog", mock.Anything, uint64(5)).Return(blog, nil)
	mockRepo.On("UpdateBlog", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.PublishBlog(context.Background(), 1, nil, 5)

	assert.NoError(t, err)
	assert.Equal(t, consts.BlogStatusPublished, out.Status)
	assert.NotEmpty(t, out.PublishedAt)

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestRepublishArchivedKeepsOriginalPublishedAt(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	first := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	blog := &model.Blog{
		ID: 5, AuthorID: 1, Slug: "hello",
		Status:      consts.BlogStatusArchived,
		PublishedAt: &first,
	}
	mockRepo.On("GetBlog", mock.Anything, uint64(5)).Return(blog, nil)
	mockRepo.On("UpdateBlog", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.PublishBlog(context.Background(), 1, nil, 5)

	assert.NoError(t, err)
	assert.Equal(t, first.Format("2006-01-02 15:04:05"), out.PublishedAt)
}

func TestPublishAlreadyPublishedRejected(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	blog := &model.Blog{ID: 5, AuthorID: 1, Status: consts.BlogStatusPublished}
	mockRepo.On("GetBlog", mock.Anything, uint64(5)).Return(blog, nil)

	_, err := svc.PublishBlog(context.Background(), 1, nil, 5)

	assert.ErrorIs(t, err, ErrStatusTransition)
}

func TestArchiveDraftRejected(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	blog := &model.Blog{ID: 5, AuthorID: 1, Status: consts.BlogStatusDraft}
	mockRepo.On("GetBlog", mock.Anything, uint64(5)).Return(blog, nil)

	err := svc.ArchiveBlog(context.Background(), 1, nil, 5)

	assert.ErrorIs(t, err, ErrStatusTransition)
}

func TestGetBlogBySlugHidesDraftFromStrangers(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	blog := &model.Blog{ID: 5, AuthorID: 1, Slug: "draft-post", Status: consts.BlogStatusDraft}
	mockRepo.On("GetBlogBySlug", mock.Anything, "draft-post").Return(blog, nil)

	_, err := svc.GetBlogBySlug(context.Background(), 2, nil, "draft-post")
	assert.ErrorIs(t, err, ErrBlogNotFound)

	out, err := svc.GetBlogBySlug(context.Background(), 1, nil, "draft-post")
	assert.NoError(t, err)
	assert.Equal(t, "draft-post", out.Slug)
}

func TestGetBlogNotFound(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	mockRepo.On("GetBlog", mock.Anything, uint64(404)).Return(nil, nil)

	_, err := svc.GetBlog(context.Background(), 1, nil, 404)

	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestListPublishedHasMore(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	blogs := make([]*model.Blog, 11)
	for i := range blogs {
		blogs[i] = &model.Blog{ID: uint64(i + 1), Status: consts.BlogStatusPublished}
	}
	mockRepo.On("ListPublished", mock.Anything, uint64(0), 11, 0).Return(blogs, nil)

	out, err := svc.ListPublished(context.Background(), &dto.BlogQueryDTO{
		PageDTO: dto.PageDTO{Page: 1, PageSize: 10},
	})

	assert.NoError(t, err)
	assert.Len(t, out.List, 10)
	assert.True(t, out.HasMore)
}

func TestSeoReportScoresMetadata(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	blog := &model.Blog{
		ID:          5,
		AuthorID:    1,
		Title:       "Hello",
		SeoTitle:    "AI Writing Tools Compared: The MarketMind Guide",
		SeoDesc:     "A hands-on comparison of AI writing tools covering pricing, output quality and integrations, so you can pick the right assistant for your team.",
		SeoKeywords: "AI Writing Tools,comparison,marketmind",
		Content:     "AI Writing Tools intro [link](/tools/a) and [more](/tools/b)",
	}
	mockRepo.On("GetBlog", mock.Anything, uint64(5)).Return(blog, nil)

	report, err := svc.SeoReport(context.Background(), 1, nil, 5)

	assert.NoError(t, err)
	assert.Greater(t, report.Overall, 0)
	assert.Equal(t, 100, report.Breakdown["title"])
	assert.NotEmpty(t, report.JsonLD)
	assert.Contains(t, report.JsonLD, "Article")
}

func TestDeleteBlogAuthorOrAdminOnly(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	svc := NewBlogService(mockRepo, nil)

	blog := &model.Blog{ID: 5, AuthorID: 1}
	mockRepo.On("GetBlog", mock.Anything, uint64(5)).Return(blog, nil)
	mockRepo.On("DeleteBlog", mock.Anything, uint64(5)).Return(nil)

	assert.ErrorIs(t, svc.DeleteBlog(context.Background(), 2, nil, 5), UnauthorizedError)
	assert.NoError(t, svc.DeleteBlog(context.Background(), 1, nil, 5))
	assert.NoError(t, svc.DeleteBlog(context.Background(), 9, []string{consts.RoleAdmin}, 5))
}
