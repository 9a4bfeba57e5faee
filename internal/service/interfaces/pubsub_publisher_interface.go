package interfaces

import "context"

// PublisherInterface defines the methods we need from pubsub.Publisher
type PublisherInterface interface {
	Publish(ctx context.Context, msg []byte, attrs map[string]string) error
}

// PubSubPublisherClientInterface defines the methods we need from pubsub.Client for publishing
type PubSubPublisherClientInterface interface {
	Publisher(topic string) PublisherInterface
	Close() error
}

// ChangePublisherInterface is what the service layer uses to emit change events.
type ChangePublisherInterface interface {
	Publish(ctx context.Context, topic string, msg []byte) error
	Close() error
}
