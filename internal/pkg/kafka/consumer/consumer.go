package consumer

import (
	"log/slog"
	"time"

	"documentstore/internal/pkg/config"
	"documentstore/internal/pkg/log_messages"
	"documentstore/internal/pkg/logger"

	kafka "github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// lowLevelConsumer is the slice of confluent's consumer the import feed needs.
type lowLevelConsumer interface {
	SubscribeTopics(topics []string, rebalanceCb kafka.RebalanceCb) error
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
	Close() error
}

// ImportConsumer reads note import batches from the configured import topic.
// Offsets are auto-committed, so delivery is at-least-once; a replayed batch
// is suppressed downstream by its request marker.
type ImportConsumer struct {
	Consumer lowLevelConsumer
	topic    string
}

// ---- Factory type and default factory (no globals) ----
type consumerFactory func(cfg *kafka.ConfigMap) (lowLevelConsumer, error)

func defaultKafkaFactory(cfg *kafka.ConfigMap) (lowLevelConsumer, error) {
	return kafka.NewConsumer(cfg)
}

// NewImportConsumerWithFactory allows injecting a mock factory in tests.
func NewImportConsumerWithFactory(kcfg config.KafkaConfig, factory consumerFactory) (*ImportConsumer, error) {
	kafkaCfg := &kafka.ConfigMap{
		"bootstrap.servers":  kcfg.Server,
		"security.protocol":  kcfg.SecurityProtocol,
		"sasl.mechanisms":    kcfg.SASLMechanism,
		"sasl.username":      kcfg.SASLUsername,
		"sasl.password":      kcfg.SASLPassword,
		"session.timeout.ms": kcfg.SessionTimeoutMs,
		"client.id":          kcfg.ClientID,
		"group.id":           kcfg.GroupID,
		"log_level":          0,
		// A fresh group starts from the oldest retained batches. Replaying
		// them is safe: imports are idempotent per request id.
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": true,
	}

	consumer, err := factory(kafkaCfg)
	if err != nil {
		return nil, err
	}

	logger.Info(log_messages.KafkaConsumerCreated,
		slog.String("topic", kcfg.ImportTopic),
		slog.String("group_id", kcfg.GroupID),
	)
	return &ImportConsumer{Consumer: consumer, topic: kcfg.ImportTopic}, nil
}

// Production constructor uses the default factory.
func NewImportConsumer(kcfg config.KafkaConfig) (*ImportConsumer, error) {
	return NewImportConsumerWithFactory(kcfg, defaultKafkaFactory)
}

// Subscribe joins the consumer group on a topic. An empty topic falls back to
// the import topic the consumer was configured with.
func (ic *ImportConsumer) Subscribe(topic string) error {
	if topic == "" {
		topic = ic.topic
	}
	return ic.Consumer.SubscribeTopics([]string{topic}, nil)
}

// Consume blocks until the next batch arrives or the consumer fails.
func (ic *ImportConsumer) Consume() (*kafka.Message, error) {
	return ic.Consumer.ReadMessage(time.Duration(-1))
}

func (ic *ImportConsumer) Close() error {
	logger.Info(log_messages.KafkaConsumerClosed, slog.String("topic", ic.topic))
	return ic.Consumer.Close()
}
