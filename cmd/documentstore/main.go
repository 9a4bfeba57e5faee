package main

import (
	"context"
	"fmt"
	"log"

	"documentstore/internal/app/router"
	"documentstore/internal/pkg/cleanup"
	config "documentstore/internal/pkg/config"
	mongodb "documentstore/internal/pkg/db/mongo"
	redisdb "documentstore/internal/pkg/db/redis"
	kafkaConsumer "documentstore/internal/pkg/kafka/consumer"
	"documentstore/internal/pkg/logger"
	"documentstore/internal/pkg/otel"
	"documentstore/internal/pkg/pubsub"
	"documentstore/internal/pkg/store/impl/audit"
	"documentstore/internal/pkg/store/impl/notes"
	"documentstore/internal/pkg/store/repository"
	notesService "documentstore/internal/service/notes"
	publisherService "documentstore/internal/service/pubsub"
)

func main() {

	ctx := context.Background()

	logger.Init()

	cfg, err := config.LoadFromConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.SetLevel(cfg.Logging.LogLevel)

	if cfg.OTel.Enabled {
		shutdown, err := otel.Setup(ctx, cfg.OTel.ServiceName, cfg.OTel.CollectorURL)
		if err != nil {
			logger.CtxError(ctx, "Failed to set up tracing", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.CtxError(ctx, "Failed to shut down tracing", err)
				}
			}()
		}
	}

	// Connect to MongoDB
	mongoClient, err := mongodb.ConnectToMongoDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Connect to Redis
	redisClient, err := redisdb.ConnectToRedis(ctx, cfg.Redis, nil)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// kafka consumer for the note import feed
	importConsumer, err := kafkaConsumer.NewImportConsumer(cfg.Kafka)
	if err != nil {
		log.Fatalf("Failed to create kafka consumer: %v", err)
	}

	logger.Debug("Kafka Consumer Created")

	err = importConsumer.Subscribe(cfg.Kafka.ImportTopic)
	if err != nil {
		logger.CtxError(ctx, "failed to create Kafka Subscribe ", err)
		return
	}

	// pubsub publisher for change events
	changePublisher, err := pubsub.NewEventPublisher(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		log.Fatalf("Failed to create Pub/Sub publisher: %v", err)
	}

	notesRepo, err := notes.NewNotesRepository(mongoClient)
	if err != nil {
		log.Fatalf("Failed to create notes repository: %v", err)
	}

	auditRepo, err := audit.NewAuditRepository(mongoClient)
	if err != nil {
		log.Fatalf("Failed to create audit repository: %v", err)
	}

	markerStore := repository.NewRedisStoreAdapter(redisClient.Client)
	changeEvents := publisherService.NewChangePublisherService(changePublisher, cfg.PubSub.ChangeTopic)
	service := notesService.NewNotesService(notesRepo, auditRepo, markerStore, changeEvents)

	server := router.SetupRouter(ctx, importConsumer, service, cfg.OTel.ServiceName)
	port := cfg.Server.Port

	if err := server.Run(":" + fmt.Sprintf("%d", port)); err != nil {
		logger.CtxError(ctx, "Failed to start server", err)
	}

	defer cleanup.CleanupResources(ctx, mongoClient, redisClient, importConsumer, changePublisher)

}
