package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"documentstore/internal/pkg/log_messages"
	"documentstore/internal/pkg/logger"
	"documentstore/internal/pkg/models"
	"documentstore/internal/service/interfaces"

	kafkaclient "github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type ImportConsumerService struct{}

func (k *ImportConsumerService) NextImportMessage(ctx context.Context,
	consumer interfaces.KafkaConsumerInterface) (*models.NoteImportMessage, *kafkaclient.Message, error) {
	return NextImportMessage(ctx, consumer)
}

// NextImportMessage blocks until a well-formed import batch arrives.
// Malformed payloads are logged and skipped; a consumer error ends the loop.
func NextImportMessage(ctx context.Context,
	consumer interfaces.KafkaConsumerInterface) (*models.NoteImportMessage, *kafkaclient.Message, error) {

	for {
		msg, err := consumer.Consume()
		if err != nil {
			logger.CtxError(ctx, log_messages.KafkaErrorConsuming, err)
			return nil, nil, err
		}

		payload, err := SerializeImportMessage(msg.Value)
		if err != nil {
			logger.CtxError(ctx, log_messages.ErrorSerializingKafkaMessage, err)
			continue
		}

		logger.CtxDebug(ctx, "Received note import batch",
			slog.String("request_id", payload.RequestID),
			slog.String("source", payload.Source),
			slog.Int("count", len(payload.Notes)),
		)

		return payload, msg, nil
	}
}

func SerializeImportMessage(message []byte) (*models.NoteImportMessage, error) {
	var batch models.NoteImportMessage

	if err := json.Unmarshal(message, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}
