package indexnow

import (
	"MarketMind/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 发布后向 IndexNow 接口提交变更 URL，搜索引擎据此触发抓取
type Client struct {
	httpClient *resty.Client
	endpoint   string
	key        string
	host       string
	enabled    bool
}

type submitBody struct {
	Host    string   `json:"host"`
	Key     string   `json:"key"`
	URLList []string `json:"urlList"`
}

func NewClient(cfg config.IndexNowConfig) *Client {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Content-Type", "application/json; charset=utf-8")

	return &Client{
		httpClient: client,
		endpoint:   cfg.Endpoint,
		key:        cfg.Key,
		host:       cfg.Host,
		enabled:    cfg.Enable,
	}
}

// Notify 提交单个站内路径，未启用时静默跳过
func (s *Client) Notify(ctx context.Context, path string) error {
	if !s.enabled {
		return nil
	}

	url := "https://" + s.host + path
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(submitBody{
			Host:    s.host,
			Key:     s.key,
			URLList: []string{url},
		}).
		Post(s.endpoint)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("indexnow 返回异常状态: %d", resp.StatusCode())
	}

	log.InfoContext(ctx, "indexnow submitted", "url", url, "status", resp.StatusCode())
	return nil
}
