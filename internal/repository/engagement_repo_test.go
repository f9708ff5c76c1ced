package repository

import (
	"MarketMind/internal/model"
	"MarketMind/internal/pkg/consts"
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)
	return db, mock
}

// 评分聚合通过单条原子 UPDATE 维护，rating 始终等于均值：
// 依次写入 4、5、3 后 rating_sum=12、review_count=3、rating=4.0
func TestAddReviewMaintainsRatingMean(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewEngagementRepo(db)

	ratingUpdate := regexp.QuoteMeta(
		"UPDATE `blogs` SET `rating`=(rating_sum + ?) / (review_count + 1)," +
			"`rating_sum`=rating_sum + ?,`review_count`=review_count + 1 WHERE id = ?")

	for _, rating := range []int{4, 5, 3} {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `reviews`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(ratingUpdate).
			WithArgs(rating, rating, uint64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.AddReview(context.Background(), &model.Review{
			ContentKind: consts.ContentKindBlog,
			ContentID:   7,
			UserID:      1,
			Rating:      rating,
		})
		assert.NoError(t, err)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddReviewUnknownKindTouchesNoTable(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewEngagementRepo(db)

	err := repo.AddReview(context.Background(), &model.Review{
		ContentKind: consts.ContentKindCategory,
		ContentID:   1,
		Rating:      5,
	})
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddLikeIncrementsCounterInSameTx(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewEngagementRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `likes`")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `tools` SET `like_count`=like_count + 1 WHERE id = ?")).
		WithArgs(uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AddLike(context.Background(), &model.Like{
		UserID:      2,
		ContentKind: consts.ContentKindTool,
		ContentID:   9,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveLikeDecrementsWithFloorGuard(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewEngagementRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `likes` WHERE user_id = ? AND content_kind = ? AND content_id = ?")).
		WithArgs(uint64(2), consts.ContentKindBlog, uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `blogs` SET `like_count`=like_count - 1 WHERE id = ? AND like_count > 0")).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.RemoveLike(context.Background(), 2, consts.ContentKindBlog, 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 没有点赞记录可删时不动计数
func TestRemoveLikeNoRowSkipsCounter(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewEngagementRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `likes`")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.RemoveLike(context.Background(), 2, consts.ContentKindBlog, 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddViewCountSingleAtomicUpdate(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewEngagementRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `blogs` SET `view_count`=view_count + ? WHERE id = ?")).
		WithArgs(int64(12), uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddViewCount(context.Background(), consts.ContentKindBlog, 3, 12)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 内容删除时互动数据在同一事务内级联清理
func TestDeleteBlogPurgesEngagementRows(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewBlogRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `blogs`")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	for _, table := range []string{"reviews", "comments", "likes", "bookmarks", "content_views"} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `"+table+"` WHERE content_kind = ? AND content_id = ?")).
			WithArgs(consts.ContentKindBlog, uint64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.DeleteBlog(context.Background(), 5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
