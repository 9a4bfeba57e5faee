package cleanup

import (
	"context"

	mongodb "documentstore/internal/pkg/db/mongo"
	redisdb "documentstore/internal/pkg/db/redis"
	kafkaConsumer "documentstore/internal/pkg/kafka/consumer"
	"documentstore/internal/pkg/logger"
	"documentstore/internal/pkg/pubsub"
)

func CleanupResources(
	ctx context.Context,
	mongoClient *mongodb.MongoClient,
	redisClient *redisdb.RedisClient,
	importConsumer *kafkaConsumer.ImportConsumer,
	changePublisher *pubsub.EventPublisher,
) {
	if importConsumer != nil && importConsumer.Consumer != nil {
		if err := importConsumer.Close(); err != nil {
			logger.CtxError(ctx, "Failed to close Kafka consumer", err)
		}
	}
	if changePublisher != nil && changePublisher.PubSubClient != nil {
		if err := changePublisher.Close(); err != nil {
			logger.CtxError(ctx, "Failed to close PubSub publisher", err)
		}
	}
	if mongoClient != nil && mongoClient.Client != nil {
		if err := mongodb.Disconnect(mongoClient.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from MongoDB", err)
		}
	}
	if redisClient != nil && redisClient.Client != nil {
		if err := redisdb.Disconnect(redisClient.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from Redis", err)
		}
	}
}
