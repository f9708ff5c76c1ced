package wire

import (
	"MarketMind/internal/api"
	"MarketMind/internal/api/config"
	"MarketMind/internal/api/handler"
	"MarketMind/internal/job"
	"MarketMind/internal/pkg/cron"
	"MarketMind/internal/pkg/indexnow"
	"MarketMind/internal/pkg/kafka"
	"MarketMind/internal/repository"
	"MarketMind/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ApplicationContainer 持有应用的全部顶层组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

// BuildApplication 按 Repo -> Service -> Handler 的顺序完成依赖装配
func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	// Repository
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	blogRepo := repository.NewBlogRepo(db)
	toolRepo := repository.NewToolRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)

	// Service
	indexNowClient := indexnow.NewClient(cfg.IndexNow)
	userService := service.NewUserService(userRepo, roleRepo)
	blogService := service.NewBlogService(blogRepo, indexNowClient)
	toolService := service.NewToolService(toolRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	engagementService := service.NewEngagementService(engagementRepo, blogRepo, toolRepo)

	// Handler
	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		BlogHandler:       handler.NewBlogHandler(blogService, engagementService),
		ToolHandler:       handler.NewToolHandler(toolService, engagementService),
		CategoryHandler:   handler.NewCategoryHandler(categoryService),
		EngagementHandler: handler.NewEngagementHandler(engagementService),
	}

	router := api.SetupRouter(handlers)

	kafkaManager, err := kafka.NewConsumerManager(cfg, engagementService)
	if err != nil {
		return nil, errors.Wrap(err, "init kafka consumer manager")
	}

	cronMgr := cron.NewCronManager(job.NewViewSyncJob(engagementRepo))

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaManager,
		CronMgr:      cronMgr,
	}, nil
}
