package api

import (
	"MarketMind/internal/api/middleware"
	"MarketMind/internal/pkg/consts"
	"MarketMind/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/password", group.UserHandler.ChangePassword)
			}

			// 需要登录 & 拥有 admin 角色
			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin, consts.RoleSuperAdmin))
			{
				adminGroup.POST("/:user_id/ban", group.UserHandler.BanUser)
				adminGroup.POST("/:user_id/unban", group.UserHandler.UnBanUser)
			}
		}

		blogGroup := apiGroup.Group("/blogs")
		{
			authOptGroup := blogGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.BlogHandler.ListBlogs)
				authOptGroup.GET("/:slug", group.BlogHandler.GetBlogBySlug)
			}

			authGroup := blogGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.BlogHandler.CreateBlog)
				authGroup.GET("/self", group.BlogHandler.ListSelfBlogs)
				authGroup.GET("/id/:blog_id", group.BlogHandler.GetBlog)
				authGroup.PUT("/id/:blog_id", group.BlogHandler.UpdateBlog)
				authGroup.DELETE("/id/:blog_id", group.BlogHandler.DeleteBlog)
				authGroup.POST("/id/:blog_id/publish", group.BlogHandler.PublishBlog)
				authGroup.POST("/id/:blog_id/archive", group.BlogHandler.ArchiveBlog)
				authGroup.GET("/id/:blog_id/seo", group.BlogHandler.SeoReport)
			}
		}

		toolGroup := apiGroup.Group("/tools")
		{
			authOptGroup := toolGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.ToolHandler.ListTools)
				authOptGroup.GET("/:slug", group.ToolHandler.GetToolBySlug)
			}

			authGroup := toolGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ToolHandler.CreateTool)
				authGroup.GET("/self", group.ToolHandler.ListSelfTools)
				authGroup.PUT("/id/:tool_id", group.ToolHandler.UpdateTool)
				authGroup.DELETE("/id/:tool_id", group.ToolHandler.DeleteTool)
				authGroup.PUT("/id/:tool_id/active", group.ToolHandler.SetToolActive)
				authGroup.GET("/id/:tool_id/seo", group.ToolHandler.SeoReport)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin, consts.RoleSuperAdmin))
			{
				adminGroup.PUT("/id/:tool_id/featured", group.ToolHandler.SetToolFeatured)
			}
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.GET("", group.CategoryHandler.ListCategories)
			categoryGroup.GET("/:slug", group.CategoryHandler.GetCategoryBySlug)

			adminGroup := categoryGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin, consts.RoleSuperAdmin))
			{
				adminGroup.POST("", group.CategoryHandler.CreateCategory)
				adminGroup.PUT("/id/:category_id", group.CategoryHandler.UpdateCategory)
				adminGroup.DELETE("/id/:category_id", group.CategoryHandler.DeleteCategory)
			}
		}

		engagementGroup := apiGroup.Group("/engagement")
		{
			authOptGroup := engagementGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/reviews", group.EngagementHandler.ListReviews)
				authOptGroup.GET("/comments", group.EngagementHandler.ListComments)
				authOptGroup.GET("/likes/state", group.EngagementHandler.GetLikeState)
				authOptGroup.POST("/views", group.EngagementHandler.RecordView)
			}

			authGroup := engagementGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/reviews", group.EngagementHandler.AddReview)
				authGroup.POST("/likes", group.EngagementHandler.ToggleLike)
				authGroup.POST("/bookmarks", group.EngagementHandler.ToggleBookmark)
				authGroup.POST("/comments", group.EngagementHandler.CreateComment)
				authGroup.DELETE("/comments/:comment_id", group.EngagementHandler.DeleteComment)
			}
		}
	}

	return r
}
