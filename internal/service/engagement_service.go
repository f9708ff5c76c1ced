package service

import (
	"MarketMind/internal/api/dto"
	"MarketMind/internal/model"
	"MarketMind/internal/pkg/consts"
	"MarketMind/internal/pkg/redis"
	"MarketMind/internal/pkg/util"
	"MarketMind/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type EngagementService interface {
	AddReview(ctx context.Context, userID uint64, reviewDTO *dto.ReviewCreateDTO) (*dto.ReviewDTO, error)
	ListReviews(ctx context.Context, kind string, contentID uint64, page, pageSize int) (*dto.ReviewListDTO, error)

	ToggleLike(ctx context.Context, userID uint64, kind string, contentID uint64) (*dto.LikeStateDTO, error)
	GetLikeState(ctx context.Context, userID uint64, kind string, contentID uint64) (*dto.LikeStateDTO, error)

	ToggleBookmark(ctx context.Context, userID uint64, kind string, contentID uint64) (*dto.BookmarkStateDTO, error)

	CreateComment(ctx context.Context, userID uint64, commentDTO *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID uint64, roles []string, commentID uint64) error
	ListComments(ctx context.Context, kind string, contentID uint64, page, pageSize int) (*dto.CommentListDTO, error)

	RecordView(ctx context.Context, userID uint64, kind string, contentID uint64, viewedAt time.Time) error
}

type engagementServiceImpl struct {
	engagementRepo repository.EngagementRepo
	blogRepo       repository.BlogRepo
	toolRepo       repository.ToolRepo
}

func NewEngagementService(engagementRepo repository.EngagementRepo, blogRepo repository.BlogRepo, toolRepo repository.ToolRepo) EngagementService {
	return &engagementServiceImpl{
		engagementRepo: engagementRepo,
		blogRepo:       blogRepo,
		toolRepo:       toolRepo,
	}
}

// checkTarget 互动目标必须是公开可见的博客或工具
func (s *engagementServiceImpl) checkTarget(ctx context.Context, kind string, contentID uint64) (model.Publishable, error) {
	switch kind {
	case consts.ContentKindBlog:
		blog, err := s.blogRepo.GetBlog(ctx, contentID)
		if err != nil {
			log.ErrorContext(ctx, "get blog error", "err", err, "blog_id", contentID)
			return nil, UnExpectedError
		}
		if blog == nil || !blog.IsVisible() {
			return nil, ErrBlogNotFound
		}
		return blog, nil
	case consts.ContentKindTool:
		tool, err := s.toolRepo.GetTool(ctx, contentID)
		if err != nil {
			log.ErrorContext(ctx, "get tool error", "err", err, "tool_id", contentID)
			return nil, UnExpectedError
		}
		if tool == nil || !tool.IsVisible() {
			return nil, ErrToolNotFound
		}
		return tool, nil
	default:
		return nil, ErrEngagementKind
	}
}

// AddReview 评分写入即刷新内容表上的评分聚合
func (s *engagementServiceImpl) AddReview(ctx context.Context, userID uint64, reviewDTO *dto.ReviewCreateDTO) (*dto.ReviewDTO, error) {
	if reviewDTO.Rating < 1 || reviewDTO.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	if _, err := s.checkTarget(ctx, reviewDTO.ContentKind, reviewDTO.ContentID); err != nil {
		return nil, err
	}

	review := &model.Review{
		ContentKind: reviewDTO.ContentKind,
		ContentID:   reviewDTO.ContentID,
		UserID:      userID,
		Rating:      reviewDTO.Rating,
		Body:        reviewDTO.Body,
	}
	if err := s.engagementRepo.AddReview(ctx, review); err != nil {
		log.ErrorContext(ctx, "add review error", "err", err,
			"kind", reviewDTO.ContentKind, "content_id", reviewDTO.ContentID)
		return nil, UnExpectedError
	}
	return toReviewDTO(review), nil
}

func (s *engagementServiceImpl) ListReviews(ctx context.Context, kind string, contentID uint64, page, pageSize int) (*dto.ReviewListDTO, error) {
	if _, err := s.checkTarget(ctx, kind, contentID); err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	reviews, err := s.engagementRepo.ListReviews(ctx, kind, contentID, pageSize+1, offset)
	if err != nil {
		log.ErrorContext(ctx, "list reviews error", "err", err, "kind", kind, "content_id", contentID)
		return nil, UnExpectedError
	}

	hasMore := len(reviews) > pageSize
	if hasMore {
		reviews = reviews[:pageSize]
	}
	list := make([]*dto.ReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		list = append(list, toReviewDTO(review))
	}
	return &dto.ReviewListDTO{List: list, HasMore: hasMore}, nil
}

// ToggleLike 已点赞则取消，未点赞则点赞，返回最新状态
func (s *engagementServiceImpl) ToggleLike(ctx context.Context, userID uint64, kind string, contentID uint64) (*dto.LikeStateDTO, error) {
	if _, err := s.checkTarget(ctx, kind, contentID); err != nil {
		return nil, err
	}

	liked, err := s.engagementRepo.CheckLikeExists(ctx, userID, kind, contentID)
	if err != nil {
		log.ErrorContext(ctx, "check like error", "err", err, "kind", kind, "content_id", contentID)
		return nil, UnExpectedError
	}

	if liked {
		err = s.engagementRepo.RemoveLike(ctx, userID, kind, contentID)
	} else {
		err = s.engagementRepo.AddLike(ctx, &model.Like{
			UserID:      userID,
			ContentKind: kind,
			ContentID:   contentID,
		})
		// 并发重复点赞撞到主键，按已点赞处理
		if err != nil && isDuplicateError(err) {
			err = nil
		}
	}
	if err != nil {
		log.ErrorContext(ctx, "toggle like error", "err", err, "kind", kind, "content_id", contentID)
		return nil, UnExpectedError
	}

	count, err := s.engagementRepo.GetLikeCount(ctx, kind, contentID)
	if err != nil {
		log.ErrorContext(ctx, "get like count error", "err", err, "kind", kind, "content_id", contentID)
		return nil, UnExpectedError
	}
	return &dto.LikeStateDTO{Liked: !liked, LikeCount: count}, nil
}

func (s *engagementServiceImpl) GetLikeState(ctx context.Context, userID uint64, kind string, contentID uint64) (*dto.LikeStateDTO, error) {
	if _, err := s.checkTarget(ctx, kind, contentID); err != nil {
		return nil, err
	}

	liked := false
	if userID > 0 {
		var err error
		liked, err = s.engagementRepo.CheckLikeExists(ctx, userID, kind, contentID)
		if err != nil {
			log.ErrorContext(ctx, "check like error", "err", err, "kind", kind, "content_id", contentID)
			return nil, UnExpectedError
		}
	}
	count, err := s.engagementRepo.GetLikeCount(ctx, kind, contentID)
	if err != nil {
		log.ErrorContext(ctx, "get like count error", "err", err, "kind", kind, "content_id", contentID)
		return nil, UnExpectedError
	}
	return &dto.LikeStateDTO{Liked: liked, LikeCount: count}, nil
}

// ToggleBookmark 已收藏则取消，未收藏则收藏
func (s *engagementServiceImpl) ToggleBookmark(ctx context.Context, userID uint64, kind string, contentID uint64) (*dto.BookmarkStateDTO, error) {
	if _, err := s.checkTarget(ctx, kind, contentID); err != nil {
		return nil, err
	}

	bookmarked, err := s.engagementRepo.CheckBookmarkExists(ctx, userID, kind, contentID)
	if err != nil {
		log.ErrorContext(ctx, "check bookmark error", "err", err, "kind", kind, "content_id", contentID)
		return nil, UnExpectedError
	}

	if bookmarked {
		err = s.engagementRepo.RemoveBookmark(ctx, userID, kind, contentID)
	} else {
		err = s.engagementRepo.AddBookmark(ctx, &model.Bookmark{
			UserID:      userID,
			ContentKind: kind,
			ContentID:   contentID,
		})
		if err != nil && isDuplicateError(err) {
			err = nil
		}
	}
	if err != nil {
		log.ErrorContext(ctx, "toggle bookmark error", "err", err, "kind", kind, "content_id", contentID)
		return nil, UnExpectedError
	}
	return &dto.BookmarkStateDTO{Bookmarked: !bookmarked}, nil
}

func (s *engagementServiceImpl) CreateComment(ctx context.Context, userID uint64, commentDTO *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	if _, err := s.checkTarget(ctx, commentDTO.ContentKind, commentDTO.ContentID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ContentKind: commentDTO.ContentKind,
		ContentID:   commentDTO.ContentID,
		UserID:      userID,
		Body:        commentDTO.Body,
	}
	if err := s.engagementRepo.CreateComment(ctx, comment); err != nil {
		log.ErrorContext(ctx, "create comment error", "err", err,
			"kind", commentDTO.ContentKind, "content_id", commentDTO.ContentID)
		return nil, UnExpectedError
	}
	return toCommentDTO(comment), nil
}

// DeleteComment 作者或管理员删除
func (s *engagementServiceImpl) DeleteComment(ctx context.Context, userID uint64, roles []string, commentID uint64) error {
	comment, err := s.engagementRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		log.ErrorContext(ctx, "get comment error", "err", err, "comment_id", commentID)
		return UnExpectedError
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && !hasAdminRole(roles) {
		return UnauthorizedError
	}

	if err = s.engagementRepo.DeleteComment(ctx, commentID); err != nil {
		log.ErrorContext(ctx, "delete comment error", "err", err, "comment_id", commentID)
		return UnExpectedError
	}
	return nil
}

func (s *engagementServiceImpl) ListComments(ctx context.Context, kind string, contentID uint64, page, pageSize int) (*dto.CommentListDTO, error) {
	if _, err := s.checkTarget(ctx, kind, contentID); err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	comments, err := s.engagementRepo.ListComments(ctx, kind, contentID, pageSize+1, offset)
	if err != nil {
		log.ErrorContext(ctx, "list comments error", "err", err, "kind", kind, "content_id", contentID)
		return nil, UnExpectedError
	}

	hasMore := len(comments) > pageSize
	if hasMore {
		comments = comments[:pageSize]
	}
	list := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		list = append(list, toCommentDTO(comment))
	}
	return &dto.CommentListDTO{List: list, HasMore: hasMore}, nil
}

// RecordView 浏览量先进 Redis 缓冲，由定时任务批量回刷数据库
func (s *engagementServiceImpl) RecordView(ctx context.Context, userID uint64, kind string, contentID uint64, viewedAt time.Time) error {
	if _, err := s.checkTarget(ctx, kind, contentID); err != nil {
		return err
	}

	if err := s.engagementRepo.CreateView(ctx, &model.ContentView{
		ContentKind: kind,
		ContentID:   contentID,
		UserID:      userID,
		ViewedAt:    viewedAt,
	}); err != nil {
		log.ErrorContext(ctx, "create view record error", "err", err, "kind", kind, "content_id", contentID)
	}

	member := util.FormatContentRef(kind, contentID)
	if _, err := redis.IncrBy(ctx, consts.ContentViewKey+member, 1); err != nil {
		log.ErrorContext(ctx, "incr view counter error", "err", err, "member", member)
		return UnExpectedError
	}
	if err := redis.SAdd(ctx, consts.ContentViewDirtyKey, member); err != nil {
		log.ErrorContext(ctx, "mark view dirty error", "err", err, "member", member)
		return UnExpectedError
	}
	return nil
}

func toReviewDTO(review *model.Review) *dto.ReviewDTO {
	out := &dto.ReviewDTO{}
	_ = copier.Copy(out, review)
	out.CreatedAt = review.CreatedAt.Format("2006-01-02 15:04:05")
	out.Nickname = review.User.Nickname
	return out
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	out := &dto.CommentDTO{}
	_ = copier.Copy(out, comment)
	out.CreatedAt = comment.CreatedAt.Format("2006-01-02 15:04:05")
	out.Nickname = comment.User.Nickname
	return out
}
