package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"ai-comicstory-be/internal/config"
	"ai-comicstory-be/internal/controller"
	"ai-comicstory-be/internal/pkg/logger"
	"ai-comicstory-be/internal/repository/contract"
	"ai-comicstory-be/internal/repository/memory"
	"ai-comicstory-be/internal/repository/redislock"
	"ai-comicstory-be/internal/repository/unitofwork"
	"ai-comicstory-be/internal/service"
	"ai-comicstory-be/pkg/comic"
	imageFactory "ai-comicstory-be/pkg/imagegen/factory"
	"ai-comicstory-be/pkg/llm/factory"

	pktNats "ai-comicstory-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	StoryController  controller.IStoryController
	HealthController controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger *logger.ZapLogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. AI Providers
	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		APIKey:        cfg.Ai.LLMApiKey,
		BaseURL:       cfg.Ai.LLMBaseURL,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("llm provider: %w", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	imageProvider, err := imageFactory.NewImageProvider(imageFactory.Config{
		Provider:       cfg.Ai.ImageProvider,
		Model:          cfg.Ai.ImageModel,
		Size:           cfg.Ai.ImageSize,
		APIKey:         cfg.Ai.ImageApiKey,
		BaseURL:        cfg.Ai.ImageBaseURL,
		IntegrationURL: cfg.Ai.ImageIntegrationURL,
	})
	if err != nil {
		return nil, fmt.Errorf("image provider: %w", err)
	}
	log.Printf("[INFO] Using Image Provider: %s", cfg.Ai.ImageProvider)

	// 4. Infrastructure
	lock, err := newGenerationLock(cfg, c)
	if err != nil {
		return nil, err
	}

	// NATS is optional; without it events are only logged
	var relay service.EventRelay
	if cfg.Infra.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Infra.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			relay = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Infra.EventTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Infra.EventTopic, relay, sysLogger)

	storyService := service.NewStoryService(uowFactory, publisherService, sysLogger)
	comicService := service.NewComicService(
		uowFactory,
		llmProvider,
		comic.NewIllustrator(imageProvider, sysLogger),
		lock,
		publisherService,
		sysLogger,
	)

	// 6. Controllers
	c.StoryController = controller.NewStoryController(storyService, comicService)
	c.HealthController = controller.NewHealthController(db)

	return c, nil
}

func newGenerationLock(cfg *config.Config, c *Container) (contract.GenerationLock, error) {
	ttl := time.Duration(cfg.Infra.GenerationLockTTLMinutes) * time.Minute

	switch cfg.Infra.GenerationLock {
	case "redis":
		opt, err := redis.ParseURL(cfg.Infra.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Infra.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis generation lock: %w", err)
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
		log.Printf("[INFO] Using Redis generation lock")
		return redislock.NewGenerationLock(rdb, ttl), nil
	case "memory", "":
		return memory.NewGenerationLock(ttl), nil
	default:
		return nil, fmt.Errorf("unsupported generation lock: %s", cfg.Infra.GenerationLock)
	}
}

// Close releases infrastructure in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
