package api

import "MarketMind/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	BlogHandler       *handler.BlogHandler
	ToolHandler       *handler.ToolHandler
	CategoryHandler   *handler.CategoryHandler
	EngagementHandler *handler.EngagementHandler
}
