package service

import (
	"MarketMind/internal/model"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) CreateBlog(ctx context.Context, blog *model.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepo) GetBlog(ctx context.Context, id uint64) (*model.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Blog), args.Error(1)
}

func (m *MockBlogRepo) GetBlogBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Blog), args.Error(1)
}

func (m *MockBlogRepo) ExistsSlug(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlogRepo) ListPublished(ctx context.Context, categoryID uint64, limit, offset int) ([]*model.Blog, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	return args.Get(0).([]*model.Blog), args.Error(1)
}

func (m *MockBlogRepo) ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Blog, error) {
	args := m.Called(ctx, authorID, limit, offset)
	return args.Get(0).([]*model.Blog), args.Error(1)
}

func (m *MockBlogRepo) UpdateBlog(ctx context.Context, blog *model.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepo) DeleteBlog(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) CreateTool(ctx context.Context, tool *model.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}

func (m *MockToolRepo) GetTool(ctx context.Context, id uint64) (*model.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tool), args.Error(1)
}

func (m *MockToolRepo) GetToolBySlug(ctx context.Context, slug string) (*model.Tool, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tool), args.Error(1)
}

func (m *MockToolRepo) ExistsSlug(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockToolRepo) ListActive(ctx context.Context, categoryID uint64, featuredOnly bool, limit, offset int) ([]*model.Tool, error) {
	args := m.Called(ctx, categoryID, featuredOnly, limit, offset)
	return args.Get(0).([]*model.Tool), args.Error(1)
}

func (m *MockToolRepo) ListByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]*model.Tool, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	return args.Get(0).([]*model.Tool), args.Error(1)
}

func (m *MockToolRepo) UpdateTool(ctx context.Context, tool *model.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}

func (m *MockToolRepo) UpdateActive(ctx context.Context, id uint64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockToolRepo) UpdateFeatured(ctx context.Context, id uint64, featured bool) error {
	args := m.Called(ctx, id, featured)
	return args.Error(0)
}

func (m *MockToolRepo) DeleteTool(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepo) GetCategory(ctx context.Context, id uint64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepo) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepo) ExistsSlug(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepo) ListActive(ctx context.Context) ([]*model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Category), args.Error(1)
}

func (m *MockCategoryRepo) CountUsage(ctx context.Context, id uint64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepo) UpdateCategory(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepo) DeleteCategory(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEngagementRepo struct {
	mock.Mock
}

func (m *MockEngagementRepo) AddReview(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockEngagementRepo) ListReviews(ctx context.Context, kind string, contentID uint64, limit, offset int) ([]*model.Review, error) {
	args := m.Called(ctx, kind, contentID, limit, offset)
	return args.Get(0).([]*model.Review), args.Error(1)
}

func (m *MockEngagementRepo) AddLike(ctx context.Context, like *model.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockEngagementRepo) RemoveLike(ctx context.Context, userID uint64, kind string, contentID uint64) error {
	args := m.Called(ctx, userID, kind, contentID)
	return args.Error(0)
}

func (m *MockEngagementRepo) CheckLikeExists(ctx context.Context, userID uint64, kind string, contentID uint64) (bool, error) {
	args := m.Called(ctx, userID, kind, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepo) GetLikeCount(ctx context.Context, kind string, contentID uint64) (int64, error) {
	args := m.Called(ctx, kind, contentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepo) AddBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockEngagementRepo) RemoveBookmark(ctx context.Context, userID uint64, kind string, contentID uint64) error {
	args := m.Called(ctx, userID, kind, contentID)
	return args.Error(0)
}

func (m *MockEngagementRepo) CheckBookmarkExists(ctx context.Context, userID uint64, kind string, contentID uint64) (bool, error) {
	args := m.Called(ctx, userID, kind, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockEngagementRepo) GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockEngagementRepo) DeleteComment(ctx context.Context, commentID uint64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockEngagementRepo) ListComments(ctx context.Context, kind string, contentID uint64, limit, offset int) ([]*model.Comment, error) {
	args := m.Called(ctx, kind, contentID, limit, offset)
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockEngagementRepo) CreateView(ctx context.Context, view *model.ContentView) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

func (m *MockEngagementRepo) AddViewCount(ctx context.Context, kind string, contentID uint64, delta int64) error {
	args := m.Called(ctx, kind, contentID, delta)
	return args.Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *model.User, roles []*model.UserRole) error {
	args := m.Called(ctx, user, roles)
	return args.Error(0)
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateBanned(ctx context.Context, id uint64, banned bool) error {
	args := m.Called(ctx, id, banned)
	return args.Error(0)
}

type MockRoleRepo struct {
	mock.Mock
}

func (m *MockRoleRepo) GetRoleNamesByUserID(ctx context.Context, userID uint64) ([]string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRoleRepo) GetRoleByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepo) AddUserRole(ctx context.Context, userID, roleID uint64) error {
	args := m.Called(ctx, userID, roleID)
	return args.Error(0)
}

func (m *MockRoleRepo) DeleteUserRole(ctx context.Context, userID, roleID uint64) error {
	args := m.Called(ctx, userID, roleID)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
