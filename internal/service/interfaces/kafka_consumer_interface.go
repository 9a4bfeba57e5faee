package interfaces

import (
	kafka "github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type KafkaConsumerInterface interface {
	Subscribe(topic string) error
	Consume() (*kafka.Message, error)
	Close() error
}
