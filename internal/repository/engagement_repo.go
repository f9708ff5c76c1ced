package repository

import (
	"MarketMind/internal/model"
	"MarketMind/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type EngagementRepo interface {
	AddReview(ctx context.Context, review *model.Review) error
	ListReviews(ctx context.Context, kind string, contentID uint64, limit, offset int) ([]*model.Review, error)

	AddLike(ctx context.Context, like *model.Like) error
	RemoveLike(ctx context.Context, userID uint64, kind string, contentID uint64) error
	CheckLikeExists(ctx context.Context, userID uint64, kind string, contentID uint64) (bool, error)
	GetLikeCount(ctx context.Context, kind string, contentID uint64) (int64, error)

	AddBookmark(ctx context.Context, bookmark *model.Bookmark) error
	RemoveBookmark(ctx context.Context, userID uint64, kind string, contentID uint64) error
	CheckBookmarkExists(ctx context.Context, userID uint64, kind string, contentID uint64) (bool, error)

	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID uint64) error
	ListComments(ctx context.Context, kind string, contentID uint64, limit, offset int) ([]*model.Comment, error)

	CreateView(ctx context.Context, view *model.ContentView) error
	AddViewCount(ctx context.Context, kind string, contentID uint64, delta int64) error
}

type EngagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &EngagementRepoImpl{db: db}
}

// contentTable 互动计数按内容类型落到对应的内容表
func contentTable(kind string) string {
	switch kind {
	case consts.ContentKindBlog:
		return "blogs"
	case consts.ContentKindTool:
		return "tools"
	default:
		return ""
	}
}

// ErrUnknownKind 内容类型无对应计数表
var ErrUnknownKind = errors.New("unknown content kind")

// AddReview 写入评价并在同一事务内原子维护评分聚合
// rating 表达式只引用旧值，不依赖同语句内其他赋值的可见顺序
func (s *EngagementRepoImpl) AddReview(ctx context.Context, review *model.Review) error {
	table := contentTable(review.ContentKind)
	if table == "" {
		return ErrUnknownKind
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Table(table).
			Where("id = ?", review.ContentID).
			Updates(map[string]interface{}{
				"rating":       gorm.Expr("(rating_sum + ?) / (review_count + 1)", review.Rating),
				"rating_sum":   gorm.Expr("rating_sum + ?", review.Rating),
				"review_count": gorm.Expr("review_count + 1"),
			}).Error
	})
}

func (s *EngagementRepoImpl) ListReviews(ctx context.Context, kind string, contentID uint64, limit, offset int) ([]*model.Review, error) {
	var reviews []*model.Review
	err := s.db.WithContext(ctx).Preload("User").
		Where("content_kind = ? AND content_id = ?", kind, contentID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

// AddLike 插入点赞并原子 +1 计数，复合主键兜底并发重复点赞
func (s *EngagementRepoImpl) AddLike(ctx context.Context, like *model.Like) error {
	table := contentTable(like.ContentKind)
	if table == "" {
		return ErrUnknownKind
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		return tx.Table(table).
			Where("id = ?", like.ContentID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
	})
}

func (s *EngagementRepoImpl) RemoveLike(ctx context.Context, userID uint64, kind string, contentID uint64) error {
	table := contentTable(kind)
	if table == "" {
		return ErrUnknownKind
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND content_kind = ? AND content_id = ?", userID, kind, contentID).
			Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Table(table).
			Where("id = ? AND like_count > 0", contentID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
	})
}

func (s *EngagementRepoImpl) CheckLikeExists(ctx context.Context, userID uint64, kind string, contentID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND content_kind = ? AND content_id = ?", userID, kind, contentID).
		Count(&count).Error
	return count > 0, err
}

func (s *EngagementRepoImpl) GetLikeCount(ctx context.Context, kind string, contentID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("content_kind = ? AND content_id = ?", kind, contentID).
		Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) AddBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	return s.db.WithContext(ctx).Create(bookmark).Error
}

func (s *EngagementRepoImpl) RemoveBookmark(ctx context.Context, userID uint64, kind string, contentID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND content_kind = ? AND content_id = ?", userID, kind, contentID).
		Delete(&model.Bookmark{}).Error
}

func (s *EngagementRepoImpl) CheckBookmarkExists(ctx context.Context, userID uint64, kind string, contentID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Bookmark{}).
		Where("user_id = ? AND content_kind = ? AND content_id = ?", userID, kind, contentID).
		Count(&count).Error
	return count > 0, err
}

func (s *EngagementRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *EngagementRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).First(&comment, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (s *EngagementRepoImpl) DeleteComment(ctx context.Context, commentID uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Comment{}, commentID).Error
}

func (s *EngagementRepoImpl) ListComments(ctx context.Context, kind string, contentID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).Preload("User").
		Where("content_kind = ? AND content_id = ?", kind, contentID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (s *EngagementRepoImpl) CreateView(ctx context.Context, view *model.ContentView) error {
	return s.db.WithContext(ctx).Create(view).Error
}

// AddViewCount 阅读增量落库，原子更新避免读改写丢更新
func (s *EngagementRepoImpl) AddViewCount(ctx context.Context, kind string, contentID uint64, delta int64) error {
	table := contentTable(kind)
	if table == "" {
		return ErrUnknownKind
	}
	return s.db.WithContext(ctx).Table(table).
		Where("id = ?", contentID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
}

// purgeEngagement 内容删除时级联清理互动数据，内容项拥有其互动记录
func purgeEngagement(tx *gorm.DB, kind string, contentID uint64) error {
	cond := "content_kind = ? AND content_id = ?"
	if err := tx.Where(cond, kind, contentID).Delete(&model.Review{}).Error; err != nil {
		return err
	}
	if err := tx.Where(cond, kind, contentID).Delete(&model.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where(cond, kind, contentID).Delete(&model.Like{}).Error; err != nil {
		return err
	}
	if err := tx.Where(cond, kind, contentID).Delete(&model.Bookmark{}).Error; err != nil {
		return err
	}
	return tx.Where(cond, kind, contentID).Delete(&model.ContentView{}).Error
}
