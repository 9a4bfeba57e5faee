package interfaces

import (
	"context"

	"documentstore/internal/pkg/models"

	kafka "github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type KafkaImportServiceInterface interface {
	NextImportMessage(ctx context.Context, consumer KafkaConsumerInterface) (*models.NoteImportMessage, *kafka.Message, error)
}
