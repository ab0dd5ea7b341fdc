// FILE: internal/bootstrap/container.go
package bootstrap

import (
	"context"
	"log"
	"time"

	"feature-flag-be/internal/config"
	"feature-flag-be/internal/controller"
	"feature-flag-be/internal/pkg/logger"
	"feature-flag-be/internal/repository/unitofwork"
	"feature-flag-be/internal/service"
	"feature-flag-be/pkg/cache"
	"feature-flag-be/pkg/evaluation"

	pktNats "feature-flag-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const flagChangedTopic = "flag_changed"

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	FeatureController controller.IFeatureController
	TenantController  controller.ITenantController
	AuditController   controller.IAuditController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS fan-out is optional; the service runs without it.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	flagCache := cache.NewRedisFlagCache(rdb)
	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	// 3. Services
	publisherService := service.NewPublisherService(flagChangedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		flagChangedTopic,
		uowFactory,
		flagCache,
		cacheTTL,
	)

	auditService := service.NewAuditService(uowFactory, sysLogger)
	flagService := service.NewFeatureFlagService(
		uowFactory,
		flagCache,
		cacheTTL,
		evaluation.NewEvaluator(),
		auditService,
		publisherService,
		natsPub,
		sysLogger,
	)
	tenantService := service.NewTenantService(uowFactory)
	authService := service.NewAuthService(cfg.Auth)

	// 4. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		FeatureController: controller.NewFeatureController(flagService, tenantService),
		TenantController:  controller.NewTenantController(tenantService),
		AuditController:   controller.NewAuditController(auditService),
		ConsumerService:   consumerService,
	}
}
