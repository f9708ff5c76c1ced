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
	"time"

	"github.com/jinzhu/copier"
)

// Notifier 发布成功后通知外部搜索引擎
type Notifier interface {
	Notify(ctx context.Context, path string) error
}

type BlogService interface {
	CreateBlog(ctx context.Context, userID uint64, blogDTO *dto.BlogBaseDTO) (*dto.BlogDTO, error)
	UpdateBlog(ctx context.Context, userID uint64, roles []string, blogID uint64, blogDTO *dto.BlogUpdateDTO) (*dto.BlogDTO, error)
	PublishBlog(ctx context.Context, userID uint64, roles []string, blogID uint64) (*dto.BlogDTO, error)
	ArchiveBlog(ctx context.Context, userID uint64, roles []string, blogID uint64) error
	DeleteBlog(ctx context.Context, userID uint64, roles []string, blogID uint64) error
	GetBlog(ctx context.Context, viewerID uint64, roles []string, blogID uint64) (*dto.BlogDTO, error)
	GetBlogBySlug(ctx context.Context, viewerID uint64, roles []string, slug string) (*dto.BlogDTO, error)
	ListPublished(ctx context.Context, query *dto.BlogQueryDTO) (*dto.BlogListDTO, error)
	ListSelf(ctx context.Context, userID uint64, page, pageSize int) (*dto.BlogListDTO, error)
	SeoReport(ctx context.Context, userID uint64, roles []string, blogID uint64) (*dto.SeoReportDTO, error)
}

type blogServiceImpl struct {
	blogRepo repository.BlogRepo
	notifier Notifier
}

func NewBlogService(blogRepo repository.BlogRepo, notifier Notifier) BlogService {
	return &blogServiceImpl{
		blogRepo: blogRepo,
		notifier: notifier,
	}
}

// CreateBlog 新建草稿，slug 依据标题取号
func (s *blogServiceImpl) CreateBlog(ctx context.Context, userID uint64, blogDTO *dto.BlogBaseDTO) (*dto.BlogDTO, error) {
	blog := &model.Blog{}
	if err := copier.Copy(blog, blogDTO); err != nil {
		log.ErrorContext(ctx, "copy blog dto error", "err", err)
		return nil, UnExpectedError
	}
	blog.AuthorID = userID
	blog.Status = consts.BlogStatusDraft
	blog.ReadingTime = seo.ReadingTime(blog.Content)

	exists := func(slugVal string) (bool, error) {
		return s.blogRepo.ExistsSlug(ctx, slugVal, 0)
	}
	err := createWithSlugRetry(blogDTO.Title, exists, func(slugVal string) error {
		blog.Slug = slugVal
		return s.blogRepo.CreateBlog(ctx, blog)
	})
	if err != nil {
		return nil, err
	}
	return s.toBlogDTO(blog), nil
}

// UpdateBlog 局部更新，标题变化时重新取号，正文变化时重算阅读时长
func (s *blogServiceImpl) UpdateBlog(ctx context.Context, userID uint64, roles []string, blogID uint64, blogDTO *dto.BlogUpdateDTO) (*dto.BlogDTO, error) {
	blog, err := s.blogRepo.GetBlog(ctx, blogID)
	if err != nil {
		log.ErrorContext(ctx, "get blog error", "err", err, "blog_id", blogID)
		return nil, UnExpectedError
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	if blog.AuthorID != userID && !hasAdminRole(roles) {
		return nil, UnauthorizedError
	}

	titleChanged := blogDTO.Title != nil && *blogDTO.Title != blog.Title
	contentChanged := blogDTO.Content != nil && *blogDTO.Content != blog.Content

	applyBlogUpdate(blog, blogDTO)
	if contentChanged {
		blog.ReadingTime = seo.ReadingTime(blog.Content)
	}

	if titleChanged {
		exists := func(slugVal string) (bool, error) {
			return s.blogRepo.ExistsSlug(ctx, slugVal, blog.ID)
		}
		err = createWithSlugRetry(blog.Title, exists, func(slugVal string) error {
			blog.Slug = slugVal
			return s.blogRepo.UpdateBlog(ctx, blog)
		})
	} else {
		err = s.blogRepo.UpdateBlog(ctx, blog)
	}
	if err != nil {
		return nil, err
	}
	return s.toBlogDTO(blog), nil
}

// PublishBlog 草稿或已归档转为已发布，首次发布记录时间并生成 JSON-LD
func (s *blogServiceImpl) PublishBlog(ctx context.Context, userID uint64, roles []string, blogID uint64) (*dto.BlogDTO, error) {
	blog, err := s.blogRepo.GetBlog(ctx, blogID)
	if err != nil {
		log.ErrorContext(ctx, "get blog error", "err", err, "blog_id", blogID)
		return nil, UnExpectedError
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	if blog.AuthorID != userID && !hasAdminRole(roles) {
		return nil, UnauthorizedError
	}
	if blog.Status == consts.BlogStatusPublished {
		return nil, ErrStatusTransition
	}

	blog.Status = consts.BlogStatusPublished
	if blog.PublishedAt == nil {
		now := time.Now()
		blog.PublishedAt = &now
	}

	jsonLD, err := seo.BuildArticleLD(blog.Title, blog.SeoDesc, blog.Author.Nickname,
		splitKeywords(blog.SeoKeywords), blog.PublishedAt, &blog.UpdatedAt)
	if err != nil {
		log.WarnContext(ctx, "build article json-ld error", "err", err, "blog_id", blogID)
	} else {
		blog.JsonLD = jsonLD
	}

	if err = s.blogRepo.UpdateBlog(ctx, blog); err != nil {
		log.ErrorContext(ctx, "publish blog error", "err", err, "blog_id", blogID)
		return nil, UnExpectedError
	}

	if s.notifier != nil {
		go func(slugVal string) {
			notifyCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if nErr := s.notifier.Notify(notifyCtx, "/blogs/"+slugVal); nErr != nil {
				log.Warn("notify search engine error", "err", nErr, "slug", slugVal)
			}
		}(blog.Slug)
	}
	return s.toBlogDTO(blog), nil
}

// ArchiveBlog 仅允许已发布转为已归档
func (s *blogServiceImpl) ArchiveBlog(ctx context.Context, userID uint64, roles []string, blogID uint64) error {
	blog, err := s.blogRepo.GetBlog(ctx, blogID)
	if err != nil {
		log.ErrorContext(ctx, "get blog error", "err", err, "blog_id", blogID)
		return UnExpectedError
	}
	if blog == nil {
		return ErrBlogNotFound
	}
	if blog.AuthorID != userID && !hasAdminRole(roles) {
		return UnauthorizedError
	}
	if blog.Status != consts.BlogStatusPublished {
		return ErrStatusTransition
	}

	blog.Status = consts.BlogStatusArchived
	if err = s.blogRepo.UpdateBlog(ctx, blog); err != nil {
		log.ErrorContext(ctx, "archive blog error", "err", err, "blog_id", blogID)
		return UnExpectedError
	}
	return nil
}

// DeleteBlog 作者或管理员删除
func (s *blogServiceImpl) DeleteBlog(ctx context.Context, userID uint64, roles []string, blogID uint64) error {
	blog, err := s.blogRepo.GetBlog(ctx, blogID)
	if err != nil {
		log.ErrorContext(ctx, "get blog error", "err", err, "blog_id", blogID)
		return UnExpectedError
	}
	if blog == nil {
		return ErrBlogNotFound
	}
	if blog.AuthorID != userID && !hasAdminRole(roles) {
		return UnauthorizedError
	}

	if err = s.blogRepo.DeleteBlog(ctx, blogID); err != nil {
		log.ErrorContext(ctx, "delete blog error", "err", err, "blog_id", blogID)
		return UnExpectedError
	}
	return nil
}

func (s *blogServiceImpl) GetBlog(ctx context.Context, viewerID uint64, roles []string, blogID uint64) (*dto.BlogDTO, error) {
	blog, err := s.blogRepo.GetBlog(ctx, blogID)
	if err != nil {
		log.ErrorContext(ctx, "get blog error", "err", err, "blog_id", blogID)
		return nil, UnExpectedError
	}
	return s.checkVisible(blog, viewerID, roles)
}

func (s *blogServiceImpl) GetBlogBySlug(ctx context.Context, viewerID uint64, roles []string, slug string) (*dto.BlogDTO, error) {
	blog, err := s.blogRepo.GetBlogBySlug(ctx, slug)
	if err != nil {
		log.ErrorContext(ctx, "get blog by slug error", "err", err, "slug", slug)
		return nil, UnExpectedError
	}
	return s.checkVisible(blog, viewerID, roles)
}

// checkVisible 非公开状态只有作者和管理员可见，其余一律按不存在处理
func (s *blogServiceImpl) checkVisible(blog *model.Blog, viewerID uint64, roles []string) (*dto.BlogDTO, error) {
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	if !blog.IsVisible() && blog.AuthorID != viewerID && !hasAdminRole(roles) {
		return nil, ErrBlogNotFound
	}
	return s.toBlogDTO(blog), nil
}

func (s *blogServiceImpl) ListPublished(ctx context.Context, query *dto.BlogQueryDTO) (*dto.BlogListDTO, error) {
	limit, offset := query.LimitOffset()
	blogs, err := s.blogRepo.ListPublished(ctx, query.CategoryID, limit+1, offset)
	if err != nil {
		log.ErrorContext(ctx, "list published blogs error", "err", err)
		return nil, UnExpectedError
	}
	return s.toBlogListDTO(blogs, limit), nil
}

func (s *blogServiceImpl) ListSelf(ctx context.Context, userID uint64, page, pageSize int) (*dto.BlogListDTO, error) {
	offset := (page - 1) * pageSize
	blogs, err := s.blogRepo.ListByAuthor(ctx, userID, pageSize+1, offset)
	if err != nil {
		log.ErrorContext(ctx, "list self blogs error", "err", err)
		return nil, UnExpectedError
	}
	return s.toBlogListDTO(blogs, pageSize), nil
}

// SeoReport 作者查看自己文章的 SEO 评估
func (s *blogServiceImpl) SeoReport(ctx context.Context, userID uint64, roles []string, blogID uint64) (*dto.SeoReportDTO, error) {
	blog, err := s.blogRepo.GetBlog(ctx, blogID)
	if err != nil {
		log.ErrorContext(ctx, "get blog error", "err", err, "blog_id", blogID)
		return nil, UnExpectedError
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	if blog.AuthorID != userID && !hasAdminRole(roles) {
		return nil, UnauthorizedError
	}

	title := blog.SeoTitle
	if title == "" {
		title = blog.Title
	}
	result := seo.Score(seo.ScoreInput{
		Title:         title,
		Description:   blog.SeoDesc,
		Keywords:      splitKeywords(blog.SeoKeywords),
		Content:       blog.Content,
		InternalLinks: strings.Count(blog.Content, "](/"),
		BrandName:     consts.BrandName,
	})

	jsonLD, err := seo.BuildArticleLD(blog.Title, blog.SeoDesc, blog.Author.Nickname,
		splitKeywords(blog.SeoKeywords), blog.PublishedAt, &blog.UpdatedAt)
	if err != nil {
		log.WarnContext(ctx, "build article json-ld error", "err", err, "blog_id", blogID)
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
		ReadingTime:     seo.ReadingTime(blog.Content),
		JsonLD:          jsonLD,
	}, nil
}

func (s *blogServiceImpl) toBlogDTO(blog *model.Blog) *dto.BlogDTO {
	out := &dto.BlogDTO{}
	_ = copier.Copy(out, blog)
	out.CreatedAt = blog.CreatedAt.Format("2006-01-02 15:04:05")
	out.UpdatedAt = blog.UpdatedAt.Format("2006-01-02 15:04:05")
	if blog.PublishedAt != nil {
		out.PublishedAt = blog.PublishedAt.Format("2006-01-02 15:04:05")
	}
	out.AuthorNickname = blog.Author.Nickname
	out.CategoryName = blog.Category.Name
	return out
}

func (s *blogServiceImpl) toBlogListDTO(blogs []*model.Blog, limit int) *dto.BlogListDTO {
	hasMore := len(blogs) > limit
	if hasMore {
		blogs = blogs[:limit]
	}
	list := make([]*dto.BlogDTO, 0, len(blogs))
	for _, blog := range blogs {
		list = append(list, s.toBlogDTO(blog))
	}
	return &dto.BlogListDTO{List: list, HasMore: hasMore}
}

// applyBlogUpdate nil 字段保持原值
func applyBlogUpdate(blog *model.Blog, d *dto.BlogUpdateDTO) {
	if d.Title != nil {
		blog.Title = *d.Title
	}
	if d.Content != nil {
		blog.Content = *d.Content
	}
	if d.Excerpt != nil {
		blog.Excerpt = *d.Excerpt
	}
	if d.CategoryID != nil {
		blog.CategoryID = *d.CategoryID
	}
	if d.SeoTitle != nil {
		blog.SeoTitle = *d.SeoTitle
	}
	if d.SeoDesc != nil {
		blog.SeoDesc = *d.SeoDesc
	}
	if d.SeoKeywords != nil {
		blog.SeoKeywords = *d.SeoKeywords
	}
}

func splitKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

func hasAdminRole(roles []string) bool {
	for _, r := range roles {
		if r == consts.RoleAdmin || r == consts.RoleSuperAdmin {
			return true
		}
	}
	return false
}
