package job

import (
	"MarketMind/internal/pkg/consts"
	"MarketMind/internal/pkg/logger"
	"MarketMind/internal/pkg/redis"
	"MarketMind/internal/pkg/util"
	"MarketMind/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/google/uuid"
)

// ViewSyncJob 把 Redis 里缓冲的浏览量批量回刷到内容表
type ViewSyncJob struct {
	engagementRepo repository.EngagementRepo
}

func NewViewSyncJob(engagementRepo repository.EngagementRepo) *ViewSyncJob {
	return &ViewSyncJob{
		engagementRepo: engagementRepo,
	}
}

func (s *ViewSyncJob) Run() {
	traceID := "job-view-sync-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 先把脏集合改名，新的浏览会落到下一轮
	processingKey := consts.ContentViewDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.ContentViewDirtyKey, processingKey); err != nil {
		// 源键不存在说明本轮没有待刷的增量，属于常态
		if !errors.Is(err, redis.ErrKeyNotExist) {
			log.ErrorContext(ctx, "rename view dirty set error", "err", err)
		}
		return
	}

	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get view dirty set error", "err", err)
		return
	}

	log.InfoContext(ctx, "ViewSyncJob processing", "content_count", len(members))

	for _, member := range members {
		kind, contentID, err := util.ParseContentRef(member)
		if err != nil {
			log.ErrorContext(ctx, "parse view member error", "err", err, "member", member)
			continue
		}

		delta, err := redis.GetDel(ctx, consts.ContentViewKey+member)
		if err != nil {
			log.ErrorContext(ctx, "get view counter error", "err", err, "member", member)
			continue
		}
		if delta == 0 {
			continue
		}

		if err = s.engagementRepo.AddViewCount(ctx, kind, contentID, delta); err != nil {
			log.ErrorContext(ctx, "flush view count error", "err", err, "member", member, "delta", delta)
			// 回刷失败把计数补回去，等下一轮再试
			if _, rErr := redis.IncrBy(ctx, consts.ContentViewKey+member, delta); rErr == nil {
				_ = redis.SAdd(ctx, consts.ContentViewDirtyKey, member)
			}
			continue
		}
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete view processing set error", "err", err)
	}
}
