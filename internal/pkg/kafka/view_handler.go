package kafka

import (
	"MarketMind/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ViewEvent 外部埋点上报的浏览事件
type ViewEvent struct {
	ContentKind string `json:"content_kind"`
	ContentID   uint64 `json:"content_id"`
	UserID      uint64 `json:"user_id"`
	ViewedAt    int64  `json:"viewed_at"` // Unix 秒
}

type ViewsHandler struct {
	engagementSvc service.EngagementService
}

func NewViewsHandler(engagementSvc service.EngagementService) *ViewsHandler {
	return &ViewsHandler{engagementSvc: engagementSvc}
}

func (s *ViewsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("view consumer setup")
	return nil
}

func (s *ViewsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("view consumer cleanup")
	return nil
}

func (s *ViewsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-view consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-view process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ViewsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event ViewEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// 坏消息重试也不会恢复，记日志后跳过
		log.ErrorContext(ctx, "unmarshal view event error", "err", err, "offset", msg.Offset)
		return nil
	}
	if event.ContentKind == "" || event.ContentID == 0 {
		log.WarnContext(ctx, "view event missing fields", "offset", msg.Offset)
		return nil
	}

	viewedAt := time.Unix(event.ViewedAt, 0)
	if event.ViewedAt == 0 {
		viewedAt = time.Now()
	}

	err := s.engagementSvc.RecordView(ctx, event.UserID, event.ContentKind, event.ContentID, viewedAt)
	if err != nil {
		// 目标不存在的事件直接丢弃，避免无限重试
		if err == service.ErrBlogNotFound || err == service.ErrToolNotFound || err == service.ErrEngagementKind {
			log.WarnContext(ctx, "view event target missing",
				"kind", event.ContentKind, "content_id", event.ContentID)
			return nil
		}
		return errors.Wrap(err, "record view from event")
	}
	return nil
}
